// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/empoderata/academy/internal/domain/models"
)

// Site identifies the sender organisation in mail footers.
type Site struct {
	Name string
	URL  string
}

// sast is South African Standard Time; submission timestamps are shown in it.
var sast = time.FixedZone("SAST", 2*60*60)

// QuoteMailData holds data for the quote notification and confirmation.
type QuoteMailData struct {
	Site        Site
	SubmittedAt time.Time
	Reference   string // collection path and record id

	FullName      string
	Company       string
	Position      string
	Email         string
	ContactNumber string

	ProgramName  string
	DeliveryMode string
	Learners     int
	PerLearner   int64
	Total        int64
}

// InquiryMailData holds data for the inquiry notification and confirmation.
type InquiryMailData struct {
	Site        Site
	SubmittedAt time.Time
	Reference   string

	FullName string
	Email    string
	Message  string

	// ContactAddress is offered to the requester as a direct fallback.
	ContactAddress string
}

// ApplicationMailData holds data for the learnership application email.
type ApplicationMailData struct {
	Site        Site
	Application models.Application
}

// BuildQuoteAdminEmail creates the sales-team notification for a quote.
// To and ReplyTo are set by the caller.
func BuildQuoteAdminEmail(data QuoteMailData) Email {
	return Email{
		Subject:  fmt.Sprintf("New Quote Request — %s", data.ProgramName),
		TextBody: renderText("quote_admin", data),
		HTMLBody: renderHTML("quote_admin", data),
	}
}

// BuildQuoteConfirmationEmail creates the requester's quote summary.
func BuildQuoteConfirmationEmail(data QuoteMailData) Email {
	return Email{
		Subject:  fmt.Sprintf("Your EasyQuote – %s", data.ProgramName),
		TextBody: renderText("quote_confirm", data),
		HTMLBody: renderHTML("quote_confirm", data),
	}
}

// BuildInquiryAdminEmail creates the notification for a general inquiry.
func BuildInquiryAdminEmail(data InquiryMailData) Email {
	return Email{
		Subject:  fmt.Sprintf("New Website Inquiry from %s", data.FullName),
		TextBody: renderText("inquiry_admin", data),
		HTMLBody: renderHTML("inquiry_admin", data),
	}
}

// BuildInquiryConfirmationEmail creates the acknowledgement sent to the
// person who asked.
func BuildInquiryConfirmationEmail(data InquiryMailData) Email {
	return Email{
		Subject:  fmt.Sprintf("We received your inquiry – %s", data.Site.Name),
		TextBody: renderText("inquiry_confirm", data),
		HTMLBody: renderHTML("inquiry_confirm", data),
	}
}

// BuildApplicationEmail creates the admissions email for an application.
// Attachments are copied from the application as-is.
func BuildApplicationEmail(data ApplicationMailData) Email {
	a := data.Application
	e := Email{
		Subject:  fmt.Sprintf("New Learnership Application — %s", a.FullName),
		TextBody: renderText("application", data),
		HTMLBody: renderHTML("application", data),
	}
	for _, f := range a.Attachments {
		e.Attachments = append(e.Attachments, Attachment{
			Filename:    f.Filename,
			ContentType: f.Type,
			Content:     f.Data,
		})
	}
	return e
}

// FormatRand renders a whole-rand amount with space digit grouping,
// e.g. 389000 -> "R389 000".
func FormatRand(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return sign + "R" + b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func localTime(t time.Time) string {
	return t.In(sast).Format("2 January 2006, 15:04 MST")
}

var funcs = map[string]any{
	"rand":  FormatRand,
	"orNA":  orNA,
	"local": localTime,
}

var (
	htmlTemplates = template.Must(template.New("mail").Funcs(template.FuncMap(funcs)).Parse(htmlSource))
	textTemplates = texttemplate.Must(texttemplate.New("mail").Funcs(texttemplate.FuncMap(funcs)).Parse(textSource))
)

func renderHTML(name string, data any) string {
	var buf bytes.Buffer
	_ = htmlTemplates.ExecuteTemplate(&buf, name, data)
	return buf.String()
}

func renderText(name string, data any) string {
	var buf bytes.Buffer
	_ = textTemplates.ExecuteTemplate(&buf, name, data)
	return buf.String()
}

const htmlSource = `
{{define "footer"}}<p>Best regards,<br/>
<strong>{{.Name}}</strong><br/>
<a href="{{.URL}}">{{.URL}}</a></p>{{end}}

{{define "quote_admin"}}<h2>New EasyQuote Request</h2>
<p><strong>Date:</strong> {{local .SubmittedAt}}</p>
<hr>
<h3>Client Details</h3>
<ul>
  <li><strong>Name:</strong> {{.FullName}}</li>
  <li><strong>Company:</strong> {{orNA .Company}}</li>
  <li><strong>Position:</strong> {{orNA .Position}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Phone:</strong> {{orNA .ContactNumber}}</li>
</ul>
<h3>Quote Details</h3>
<ul>
  <li><strong>Programme:</strong> {{.ProgramName}}</li>
  <li><strong>Delivery Mode:</strong> {{orNA .DeliveryMode}}</li>
  <li><strong>Number of Learners:</strong> {{.Learners}}</li>
  <li><strong>Cost Per Learner:</strong> {{rand .PerLearner}}</li>
  <li><strong>Total Estimated Cost:</strong> <strong style="color: #3349df; font-size: 1.2em;">{{rand .Total}}</strong></li>
</ul>
<hr>
<p><em>Reference: {{.Reference}}</em></p>{{end}}

{{define "quote_confirm"}}<p>Hi {{.FullName}},</p>
<p>Thank you for requesting a quote from {{.Site.Name}}.</p>
<h3>Quote Summary</h3>
<ul>
  <li><strong>Programme:</strong> {{.ProgramName}}</li>
  <li><strong>Number of Learners:</strong> {{.Learners}}</li>
  <li><strong>Cost Per Learner:</strong> {{rand .PerLearner}}</li>
  <li><strong>Total Estimated Cost:</strong> {{rand .Total}}</li>
</ul>
<p>This is an indicative quote. Our team has been notified and will be in touch within 24-48 hours with a formal proposal.</p>
<p>If you have any questions, feel free to reply to this email.</p>
{{template "footer" .Site}}{{end}}

{{define "inquiry_admin"}}<h2>New Website Inquiry</h2>
<p><strong>Date:</strong> {{local .SubmittedAt}}</p>
<hr>
<h3>Contact Details</h3>
<ul>
  <li><strong>Name:</strong> {{.FullName}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
</ul>
<h3>Message</h3>
<p>{{if .Message}}{{.Message}}{{else}}No message provided{{end}}</p>
<hr>
<p><em>Reference: {{.Reference}}</em></p>{{end}}

{{define "inquiry_confirm"}}<p>Hi {{.FullName}},</p>
<p>Thank you for reaching out to {{.Site.Name}}. We've received your inquiry and will get back to you shortly.</p>
<p>If you don't hear from us within 24 hours, please feel free to email us directly at <strong>{{.ContactAddress}}</strong>.</p>
{{template "footer" .Site}}{{end}}

{{define "application"}}{{with .Application}}<h2>New Learnership Application</h2>
<ul>
  <li><strong>Full Name:</strong> {{.FullName}}</li>
  <li><strong>ID Number:</strong> {{.IDNumber}}</li>
  <li><strong>DOB:</strong> {{.DOB}}</li>
  <li><strong>Contact:</strong> {{.ContactNumber}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Address:</strong> {{.Address}}</li>
  <li><strong>Highest Qualification:</strong> {{.HighestQualification}}</li>
  <li><strong>Employed:</strong> {{.Employed}}</li>
  <li><strong>Employer Details:</strong> {{.EmployerDetails}}</li>
  <li><strong>Disability:</strong> {{.Disability}}{{if eq .Disability "Yes"}} ({{.DisabilityType}}){{end}}</li>
  <li><strong>Number Applying:</strong> {{.NumApplying}}</li>
  <li><strong>Programme:</strong> {{.ProgrammeID}}</li>
  <li><strong>Comments:</strong> {{.Comments}}</li>
</ul>
<p>{{len .Attachments}} attachment(s) included.</p>{{end}}{{end}}
`

const textSource = `
{{define "footer"}}Best regards,
{{.Name}}
{{.URL}}
{{end}}

{{define "quote_admin"}}New EasyQuote Request
Date: {{local .SubmittedAt}}

Client
  Name:     {{.FullName}}
  Company:  {{orNA .Company}}
  Position: {{orNA .Position}}
  Email:    {{.Email}}
  Phone:    {{orNA .ContactNumber}}

Quote
  Programme:     {{.ProgramName}}
  Delivery mode: {{orNA .DeliveryMode}}
  Learners:      {{.Learners}}
  Per learner:   {{rand .PerLearner}}
  Total:         {{rand .Total}}

Reference: {{.Reference}}
{{end}}

{{define "quote_confirm"}}Hi {{.FullName}},

Thank you for requesting a quote from {{.Site.Name}}.

  Programme:   {{.ProgramName}}
  Learners:    {{.Learners}}
  Per learner: {{rand .PerLearner}}
  Total:       {{rand .Total}}

This is an indicative quote. Our team has been notified and will be in touch
within 24-48 hours with a formal proposal.

{{template "footer" .Site}}{{end}}

{{define "inquiry_admin"}}New Website Inquiry
Date: {{local .SubmittedAt}}

  Name:  {{.FullName}}
  Email: {{.Email}}

{{if .Message}}{{.Message}}{{else}}No message provided{{end}}

Reference: {{.Reference}}
{{end}}

{{define "inquiry_confirm"}}Hi {{.FullName}},

Thank you for reaching out to {{.Site.Name}}. We've received your inquiry and
will get back to you shortly. If you don't hear from us within 24 hours,
email us directly at {{.ContactAddress}}.

{{template "footer" .Site}}{{end}}

{{define "application"}}{{with .Application}}New Learnership Application

  Full name:             {{.FullName}}
  ID number:             {{.IDNumber}}
  DOB:                   {{.DOB}}
  Contact:               {{.ContactNumber}}
  Email:                 {{.Email}}
  Address:               {{.Address}}
  Highest qualification: {{.HighestQualification}}
  Employed:              {{.Employed}}
  Employer details:      {{.EmployerDetails}}
  Disability:            {{.Disability}}{{if eq .Disability "Yes"}} ({{.DisabilityType}}){{end}}
  Number applying:       {{.NumApplying}}
  Programme:             {{.ProgrammeID}}
  Comments:              {{.Comments}}

{{len .Attachments}} attachment(s) included.
{{end}}{{end}}
`
