package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"agency_backoffice/internal/usecase/interfaces"
)

type emailKind string

const (
	emailProposal          emailKind = "proposal"
	emailContract          emailKind = "contract"
	emailDownPaymentLink   emailKind = "down_payment_link"
	emailDownPaymentPaid   emailKind = "down_payment_paid"
	emailProgress          emailKind = "progress"
	emailFinalPaymentLink  emailKind = "final_payment_link"
	emailProjectCompleted  emailKind = "project_completed"
	emailDeliveryScheduled emailKind = "delivery_scheduled"
)

// emailData feeds every template; each template reads only what it needs.
type emailData struct {
	ClientName  string
	ProjectName string
	ProjectType string
	Amount      string
	Link        string
	Progress    int
	Date        string
	Time        string
	MeetingLink string
	Content     string
}

type emailTemplate struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *template.Template
}

const emailLayout = `<!doctype html><html><body style="font-family:Arial,sans-serif;color:#222">
<p>Olá {{.ClientName}},</p>
{{block "body" .}}{{end}}
<p>Equipe Agência</p>
</body></html>`

func mustEmail(subject, text, body string) emailTemplate {
	t := template.Must(template.New("layout").Parse(emailLayout))
	template.Must(t.New("body").Parse(body))
	return emailTemplate{
		subject: texttemplate.Must(texttemplate.New("subject").Parse(subject)),
		text:    texttemplate.Must(texttemplate.New("text").Parse(text)),
		html:    t,
	}
}

var emailTemplates = map[emailKind]emailTemplate{
	emailProposal: mustEmail(
		"Sua proposta para {{.ProjectType}}",
		"Sua proposta está pronta. Valor: R$ {{.Amount}}.",
		`<p>Sua proposta para <b>{{.ProjectType}}</b> está pronta.</p><p>Valor: R$ {{.Amount}}</p>{{if .Link}}<p><a href="{{.Link}}">Ver proposta</a></p>{{end}}`,
	),
	emailContract: mustEmail(
		"Contrato do projeto {{.ProjectType}}",
		"Seu contrato está disponível para assinatura.",
		`<p>Seu contrato está disponível para assinatura.</p><pre style="white-space:pre-wrap">{{.Content}}</pre>{{if .Link}}<p><a href="{{.Link}}">Assinar contrato</a></p>{{end}}`,
	),
	emailDownPaymentLink: mustEmail(
		"Link de pagamento da entrada",
		"Pague a entrada de R$ {{.Amount}} em {{.Link}}",
		`<p>A entrada de 25% (R$ {{.Amount}}) pode ser paga pelo link abaixo.</p><p><a href="{{.Link}}">Pagar entrada</a></p>`,
	),
	emailDownPaymentPaid: mustEmail(
		"Pagamento confirmado: {{.ProjectName}}",
		"Recebemos a entrada de R$ {{.Amount}}. Seu projeto foi iniciado.",
		`<p>Recebemos a entrada de R$ {{.Amount}}.</p><p>O projeto <b>{{.ProjectName}}</b> foi iniciado e está em planejamento.</p>`,
	),
	emailProgress: mustEmail(
		"Atualização do projeto {{.ProjectName}}: {{.Progress}}%",
		"Seu projeto atingiu {{.Progress}}% de desenvolvimento.",
		`<p>O projeto <b>{{.ProjectName}}</b> atingiu <b>{{.Progress}}%</b> de desenvolvimento.</p>`,
	),
	emailFinalPaymentLink: mustEmail(
		"Projeto concluído: pagamento final",
		"Pague o valor final de R$ {{.Amount}} em {{.Link}}",
		`<p>O projeto <b>{{.ProjectName}}</b> está pronto. O pagamento final (R$ {{.Amount}}) pode ser feito pelo link abaixo.</p><p><a href="{{.Link}}">Pagar valor final</a></p>`,
	),
	emailProjectCompleted: mustEmail(
		"Projeto {{.ProjectName}} finalizado",
		"Recebemos o pagamento final de R$ {{.Amount}}. Obrigado!",
		`<p>Recebemos o pagamento final de R$ {{.Amount}}.</p><p>O projeto <b>{{.ProjectName}}</b> está concluído. Obrigado pela parceria!</p>`,
	),
	emailDeliveryScheduled: mustEmail(
		"Entrega agendada: {{.ProjectName}}",
		"Entrega agendada para {{.Date}} às {{.Time}}.",
		`<p>A entrega do projeto <b>{{.ProjectName}}</b> foi agendada para {{.Date}} às {{.Time}}.</p>{{if .MeetingLink}}<p><a href="{{.MeetingLink}}">Entrar na reunião</a></p>{{end}}`,
	),
}

func renderEmail(kind emailKind, to string, d emailData) (interfaces.EmailMessage, error) {
	tpl, ok := emailTemplates[kind]
	if !ok {
		return interfaces.EmailMessage{}, fmt.Errorf("unknown email template %q", kind)
	}

	var html bytes.Buffer
	if err := tpl.html.Execute(&html, d); err != nil {
		return interfaces.EmailMessage{}, fmt.Errorf("render %s: %w", kind, err)
	}

	var subject, text bytes.Buffer
	if err := tpl.subject.Execute(&subject, d); err != nil {
		return interfaces.EmailMessage{}, fmt.Errorf("render %s subject: %w", kind, err)
	}
	if err := tpl.text.Execute(&text, d); err != nil {
		return interfaces.EmailMessage{}, fmt.Errorf("render %s text: %w", kind, err)
	}

	return interfaces.EmailMessage{
		To:      to,
		Subject: subject.String(),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
