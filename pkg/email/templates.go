package email

import (
	"fmt"
	"html"
	"time"
)

// ContactEmailData contains the data rendered into contact submission emails.
type ContactEmailData struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Subject     string
	Message     string
	Reference   string
	IPAddress   string
	SubmittedAt time.Time
	CompanyName string
}

// QuoteEmailData contains the data rendered into quote request emails.
type QuoteEmailData struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	Product      string
	Quantity     string
	Requirements string
	Reference    string
	IPAddress    string
	SubmittedAt  time.Time
	CompanyName  string
}

// BuildContactAdminEmail creates the internal notice sent to the business
// admin address for a new contact form submission.
func BuildContactAdminEmail(to string, d ContactEmailData) Message {
	company := orDefault(d.CompanyName, "The11EximOverSeas")
	when := d.SubmittedAt.Format("2 Jan 2006 15:04:05 MST")

	subject := fmt.Sprintf("New Contact Form: %s", d.Subject)

	textBody := fmt.Sprintf(`New contact form submission on the %s website.

Name:    %s
Email:   %s
Phone:   %s
Company: %s
Subject: %s

Message:
%s

Reference ID: %s
IP address:   %s
Submitted at: %s

Please respond to this client within 24 hours.`,
		company,
		d.Name, d.Email, orDefault(d.Phone, "Not provided"), orDefault(d.Company, "Not provided"), d.Subject,
		d.Message,
		d.Reference, d.IPAddress, when)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #047857;">New contact form submission</h2>
    <table style="border-collapse: collapse; width: 100%%;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Name</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Email</td><td style="padding: 6px 12px;"><a href="mailto:%s">%s</a></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Phone</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Company</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Subject</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <div style="background-color: #f3f4f6; padding: 15px 20px; border-radius: 6px; border-left: 4px solid #047857; margin: 20px 0;">
        <p style="margin: 0; font-style: italic;">%s</p>
    </div>
    <p style="color: #6b7280; font-size: 14px;">Reference ID: <strong>%s</strong><br>IP address: %s<br>Submitted at: %s</p>
    <p style="color: #dc2626; font-weight: 600;">Please respond to this client within 24 hours.</p>
</body>
</html>`,
		html.EscapeString(d.Name),
		html.EscapeString(d.Email), html.EscapeString(d.Email),
		html.EscapeString(orDefault(d.Phone, "Not provided")),
		html.EscapeString(orDefault(d.Company, "Not provided")),
		html.EscapeString(d.Subject),
		html.EscapeString(d.Message),
		d.Reference, d.IPAddress, when)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildContactAckEmail creates the acknowledgment sent back to the submitter.
func BuildContactAckEmail(d ContactEmailData) Message {
	company := orDefault(d.CompanyName, "The11EximOverSeas")

	subject := fmt.Sprintf("Thank you for contacting %s", company)

	textBody := fmt.Sprintf(`Dear %s,

Thank you for reaching out to %s. We have successfully received your
message and our team will get back to you within 24 hours.

Your message:
"%s"

What's next?
- Our team will review your message within 24 hours
- We'll contact you using the email address you provided: %s
- If urgent, you can call us directly at our business number

Reference ID: %s
Please keep this reference ID for your records.

%s
Your Trusted Global Trade Partner`,
		d.Name, company, d.Message, d.Email, d.Reference, company)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #047857;">Dear %s,</h2>
    <p>Thank you for reaching out to %s. We have successfully received your message and our team will get back to you within 24 hours.</p>
    <div style="background-color: #f0f9ff; padding: 15px 20px; border-radius: 6px; border-left: 4px solid #0ea5e9; margin: 20px 0;">
        <p style="margin: 0; font-style: italic;">&quot;%s&quot;</p>
    </div>
    <h3 style="color: #92400e;">What's next?</h3>
    <ul>
        <li>Our team will review your message within 24 hours</li>
        <li>We'll contact you using the email address you provided: <strong>%s</strong></li>
        <li>If urgent, you can call us directly at our business number</li>
    </ul>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-size: 14px;">Reference ID: <strong>%s</strong><br>Please keep this reference ID for your records.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">%s<br>Your Trusted Global Trade Partner</p>
</body>
</html>`,
		html.EscapeString(d.Name), company,
		html.EscapeString(d.Message),
		html.EscapeString(d.Email),
		d.Reference, company)

	return Message{
		To:       []string{d.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildQuoteAdminEmail creates the internal notice sent to the business
// admin address for a new quote request.
func BuildQuoteAdminEmail(to string, d QuoteEmailData) Message {
	company := orDefault(d.CompanyName, "The11EximOverSeas")
	when := d.SubmittedAt.Format("2 Jan 2006 15:04:05 MST")

	subject := fmt.Sprintf("New Quote Request: %s", d.Product)

	textBody := fmt.Sprintf(`New quote request on the %s website.

Name:     %s
Email:    %s
Phone:    %s
Company:  %s
Product:  %s
Quantity: %s

Requirements:
%s

Reference ID: %s
IP address:   %s
Submitted at: %s

Please prepare and send a detailed quote within 24 hours.`,
		company,
		d.Name, d.Email, orDefault(d.Phone, "Not provided"), orDefault(d.Company, "Not provided"),
		d.Product, d.Quantity,
		orDefault(d.Requirements, "None specified"),
		d.Reference, d.IPAddress, when)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #5b21b6;">New quote request</h2>
    <table style="border-collapse: collapse; width: 100%%;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Name</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Email</td><td style="padding: 6px 12px;"><a href="mailto:%s">%s</a></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Phone</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Company</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Product</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Quantity</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <div style="background-color: #f3f4f6; padding: 15px 20px; border-radius: 6px; border-left: 4px solid #5b21b6; margin: 20px 0;">
        <p style="margin: 0;">%s</p>
    </div>
    <p style="color: #6b7280; font-size: 14px;">Quote Reference ID: <strong>%s</strong><br>IP address: %s<br>Submitted at: %s</p>
    <p style="color: #dc2626; font-weight: 600;">Please prepare and send a detailed quote within 24 hours.</p>
</body>
</html>`,
		html.EscapeString(d.Name),
		html.EscapeString(d.Email), html.EscapeString(d.Email),
		html.EscapeString(orDefault(d.Phone, "Not provided")),
		html.EscapeString(orDefault(d.Company, "Not provided")),
		html.EscapeString(d.Product),
		html.EscapeString(d.Quantity),
		html.EscapeString(orDefault(d.Requirements, "None specified")),
		d.Reference, d.IPAddress, when)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildQuoteAckEmail creates the acknowledgment sent back to the requester.
func BuildQuoteAckEmail(d QuoteEmailData) Message {
	company := orDefault(d.CompanyName, "The11EximOverSeas")

	subject := fmt.Sprintf("Quote Request Received - %s", company)

	textBody := fmt.Sprintf(`Dear %s,

Thank you for your interest in our products! We have received your quote
request and our team will prepare a detailed quote for you within 24 hours.

Requested product: %s
Quantity: %s

What's next?
- Our pricing team will analyze your requirements
- You'll receive a detailed quote within 24 hours
- Our sales team will follow up to discuss the details

Quote Reference ID: %s
Please keep this reference ID for your records.

%s
Your Trusted Global Trade Partner`,
		d.Name, d.Product, d.Quantity, d.Reference, company)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #5b21b6;">Dear %s,</h2>
    <p>Thank you for your interest in our products! We have received your quote request and our team will prepare a detailed quote for you within 24 hours.</p>
    <table style="border-collapse: collapse; width: 100%%; margin: 20px 0;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Product</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Quantity</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <h3 style="color: #92400e;">What's next?</h3>
    <ul>
        <li>Our pricing team will analyze your requirements</li>
        <li>You'll receive a detailed quote within 24 hours</li>
        <li>Our sales team will follow up to discuss the details</li>
    </ul>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-size: 14px;">Quote Reference ID: <strong>%s</strong><br>Please keep this reference ID for your records.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">%s<br>Your Trusted Global Trade Partner</p>
</body>
</html>`,
		html.EscapeString(d.Name),
		html.EscapeString(d.Product),
		html.EscapeString(d.Quantity),
		d.Reference, company)

	return Message{
		To:       []string{d.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
