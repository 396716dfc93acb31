package email

import "context"

// SendWelcomeEmail sends a welcome email to a new user.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, firstName string) error {
	data := map[string]string{
		"UserFirstName": firstName,
	}

	return c.SendEmail(ctx, to, "Welcome to usersvc!", TemplateWelcome, data)
}
