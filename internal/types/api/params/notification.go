package params

// TransactionalEmailParams describes one templated email send.
type TransactionalEmailParams struct {
	To           string
	Subject      string
	TemplateName string
	TemplateData map[string]interface{}
	Tags         map[string]string
}

// NotificationParams is one delivery job: inline locally, queued in deployed
// stages and drained by the notifier worker.
type NotificationParams struct {
	Channel   string                 `json:"channel"` // "email" or "whatsapp"
	Recipient string                 `json:"recipient"`
	Subject   string                 `json:"subject,omitempty"`
	Template  string                 `json:"template,omitempty"`
	Body      string                 `json:"body,omitempty"`
	Reference string                 `json:"reference,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}
