package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	mail "github.com/go-mail/mail"
	"go.uber.org/zap"

	"github.com/dexianlabs/pastelaria-api/internal/config"
)

const orderCreatedSubject = "Order Created"

var orderCreatedTmpl = template.Must(template.New("order_created").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>Order Created</title>
  </head>
  <body>
    <h1>Pedido Criado com Sucesso!</h1>
    <p>Pedido ID: {{.OrderID}}</p>
    <p>Cliente: {{.ClientName}}</p>
    <p>Total: R$ {{printf "%.2f" .Price}}</p>
    <p>Obrigado pela sua compra!</p>
  </body>
</html>
`))

type SMTPMailer struct {
	host   string
	port   int
	user   string
	pass   string
	from   string
	logger *zap.Logger
}

func NewSMTPMailer(cfg *config.Config, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		from:   cfg.MailFrom,
		logger: logger,
	}
}

func (m *SMTPMailer) SendOrderCreated(ctx context.Context, to string, data OrderCreated) error {
	var body bytes.Buffer
	if err := orderCreatedTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render order mail: %w", err)
	}

	text := fmt.Sprintf(
		"Pedido Criado com Sucesso!\nPedido ID: %d\nCliente: %s\nTotal: R$ %.2f\nObrigado pela sua compra!",
		data.OrderID, data.ClientName, data.Price,
	)

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", orderCreatedSubject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", body.String())

	d := mail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		m.logger.Error("smtp send failed",
			zap.String("to", to),
			zap.Uint("order_id", data.OrderID),
			zap.Error(err),
		)
		return fmt.Errorf("smtp send: %w", err)
	}

	m.logger.Info("order mail sent",
		zap.String("to", to),
		zap.Uint("order_id", data.OrderID),
	)
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
