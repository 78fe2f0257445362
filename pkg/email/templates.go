package email

const templates = `
{{define "layout_start"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; padding: 10px 20px; background: #0066cc; color: #fff; text-decoration: none; border-radius: 4px; }
        .note { background: #f5f5f5; padding: 12px; border-left: 4px solid #0066cc; }
        .footer { color: #888; font-size: 12px; margin-top: 24px; }
    </style>
</head>
<body><div class="container">{{end}}

{{define "layout_end"}}{{if .Unsubscribe}}<p class="footer">Don't want these emails? <a href="{{.Unsubscribe}}">Unsubscribe</a>.</p>{{end}}
</div></body>
</html>{{end}}

{{define "verify"}}{{template "layout_start" .}}
<h2>Welcome, {{.Name}}!</h2>
<p>Please confirm your email address. The link is valid for 24 hours.</p>
<p><a class="button" href="{{.Link}}">Verify email</a></p>
{{template "layout_end" .}}{{end}}

{{define "reset"}}{{template "layout_start" .}}
<h2>Hello {{.Name}},</h2>
<p>We received a request to reset your password. The link is valid for 10 minutes.</p>
<p><a class="button" href="{{.Link}}">Reset password</a></p>
<p>If you did not request this, you can ignore this email.</p>
{{template "layout_end" .}}{{end}}

{{define "new_application"}}{{template "layout_start" .}}
<h2>Hello {{.EmployerName}},</h2>
<p>{{.CandidateName}} applied for <strong>{{.JobTitle}}</strong>.</p>
<p><a class="button" href="{{.Link}}">Review application</a></p>
{{template "layout_end" .}}{{end}}

{{define "status_change"}}{{template "layout_start" .}}
<h2>Hello {{.CandidateName}},</h2>
<p>Your application for <strong>{{.JobTitle}}</strong>{{if .CompanyName}} at {{.CompanyName}}{{end}} moved from <em>{{.OldStatus}}</em> to <strong>{{.NewStatus}}</strong>.</p>
{{if .Note}}<div class="note">{{.Note}}</div>{{end}}
<p><a class="button" href="{{.Link}}">View your applications</a></p>
{{template "layout_end" .}}{{end}}
`
