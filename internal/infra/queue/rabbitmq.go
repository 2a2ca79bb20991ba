package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.briefing"
	QueueName    = "q.leads"
	DLQName      = "q.leads.dlq"
	DLXName      = "ex.dlx" // Dead Letter Exchange
	RoutingKey   = "k.lead-created"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(user, pass, host, port string) (*RabbitMQ, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(dsn)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("falha ao declarar exchange: %w", err)
	}

	if err := ch.ExchangeDeclare(DLXName, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("falha ao declarar DLX: %w", err)
	}

	dlq, err := ch.QueueDeclare(DLQName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("falha ao declarar DLQ: %w", err)
	}
	if err := ch.QueueBind(dlq.Name, "", DLXName, false, nil); err != nil {
		return fmt.Errorf("falha ao bindar DLQ: %w", err)
	}

	// Mensagem rejeitada cai na DLQ em vez de sumir.
	args := amqp.Table{"x-dead-letter-exchange": DLXName}
	q, err := ch.QueueDeclare(QueueName, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("falha ao declarar fila: %w", err)
	}
	if err := ch.QueueBind(q.Name, RoutingKey, ExchangeName, false, nil); err != nil {
		return fmt.Errorf("falha ao bindar fila: %w", err)
	}

	return nil
}
