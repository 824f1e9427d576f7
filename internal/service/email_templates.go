package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// label turns an enum value like "under_review" into "Under Review".
func label(value string) string {
	return titleCaser.String(strings.ReplaceAll(value, "_", " "))
}

func welcomeEmailTemplate(name, dashboardURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is ready. You can submit a case and book a consultation from your dashboard:
%s

Every case you submit is reviewed by one of our lawyers, and you will hear from us when its status changes.

Best,
The %s Team`, name, dashboardURL, appName)

	return subject, body
}

func caseStatusEmailTemplate(name, caseTitle, status, caseURL, appName string) (string, string) {
	subject := fmt.Sprintf("Your case \"%s\" is now %s", caseTitle, label(status))
	body := fmt.Sprintf(`Hi %s,

The status of your case "%s" changed to: %s

You can follow your case here:
%s

Best,
The %s Team`, name, caseTitle, label(status), caseURL, appName)

	return subject, body
}
