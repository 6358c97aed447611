package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const mailCharset = "UTF-8"

var sesClient *ses.Client

// InitMailer sets up the SES client. Called from main so a missing AWS
// config fails at startup, not on the first email.
func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

type mail struct {
	to      string
	subject string
	body    string
}

func send(m mail) error {
	if sesClient == nil {
		return fmt.Errorf("mailer not initialized")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{m.to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(m.subject), Charset: aws.String(mailCharset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(m.body), Charset: aws.String(mailCharset)},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := sesClient.SendEmail(context.TODO(), input); err != nil {
		log.Printf("SES send to %s failed: %v", m.to, err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendMFAEmail(to, code string) error {
	return send(mail{
		to:      to,
		subject: "Your diet tracker sign-in code",
		body: fmt.Sprintf(
			"Your sign-in code is %s.\n\nEnter it in the app to finish logging in. If this wasn't you, you can ignore this email.",
			code,
		),
	})
}

func SendResetEmail(to, code string) error {
	return send(mail{
		to:      to,
		subject: "Reset your diet tracker password",
		body: fmt.Sprintf(
			"Your password reset code is %s. It expires in 15 minutes.\n\nIf you didn't ask to reset your password, no action is needed.",
			code,
		),
	})
}
