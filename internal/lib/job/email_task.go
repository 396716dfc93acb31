package job

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// TaskWelcome is the job type name stored in Redis.
	TaskWelcome = "email:welcome"
)

// WelcomeEmailPayload is the JSON payload of the welcome email task.
type WelcomeEmailPayload struct {
	To        string `json:"to"`
	FirstName string `json:"first_name"`
}

// NewWelcomeEmailTask builds the welcome task for a user named name.
//
// The task is retried up to 3 times and killed after 30 seconds.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:        to,
		FirstName: FirstName(name),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// FirstName returns the title-cased first word of name.
//
//	FirstName("  ada lovelace") == "Ada"
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return cases.Title(language.English).String(fields[0])
}
