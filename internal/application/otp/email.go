package otp

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/tasker-otp/internal/domain"
)

var codeEmail = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
    .container { max-width: 600px; margin: 0 auto; background: white; border-radius: 10px; padding: 30px; }
    .header { text-align: center; color: #2196F3; }
    .otp-box { background: #E3F2FD; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0; }
    .otp-code { font-size: 32px; font-weight: bold; letter-spacing: 5px; color: #1976D2; }
    .footer { text-align: center; color: #666; font-size: 12px; margin-top: 30px; }
  </style>
</head>
<body>
  <div class="container">
    <h1 class="header">{{.AppName}}</h1>
    <h2>Email Verification</h2>
    <p>Please use the following verification code to complete your registration:</p>
    <div class="otp-box">
      <div class="otp-code">{{.Code}}</div>
    </div>
    <p><strong>This code will expire in {{.Minutes}} minutes.</strong></p>
    <div class="footer">
      <p>This is an automated message, please do not reply.</p>
    </div>
  </div>
</body>
</html>
`))

type codeEmailData struct {
	AppName string
	Code    string
	Minutes int
}

func renderCodeEmail(appName, to, code string, ttl time.Duration) (domain.Email, error) {
	data := codeEmailData{AppName: appName, Code: code, Minutes: int(ttl / time.Minute)}
	var buf bytes.Buffer
	if err := codeEmail.Execute(&buf, data); err != nil {
		return domain.Email{}, fmt.Errorf("render otp email: %w", err)
	}
	return domain.Email{
		To:      to,
		Subject: fmt.Sprintf("Your %s verification code", appName),
		HTML:    buf.String(),
		Text: fmt.Sprintf("Your %s verification code is %s. It expires in %d minutes.",
			appName, code, data.Minutes),
	}, nil
}
