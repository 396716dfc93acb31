package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData[TemplateWelcome]["UserFirstName"] == "John"
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "John",
	},
}
