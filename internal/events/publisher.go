package events

import (
	"encoding/json"
	"time"

	"truco-game/internal/game"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Subjects the server publishes on.
const (
	SubjectHandResolved  = "truco.hand.resolved"
	SubjectMatchFinished = "truco.match.finished"
)

// Publisher sends match lifecycle events to NATS. A nil *Publisher is valid
// and drops every event, so the bus stays optional.
type Publisher struct {
	nc  *nats.Conn
	log *logrus.Logger
}

// Connect dials the broker. An empty url disables publishing and returns a nil Publisher.
func Connect(url string, log *logrus.Logger) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	opts := []nats.Option{
		nats.Name("Truco-Server"),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	log.Infof("Connected to NATS at %s", nc.ConnectedUrl())
	return &Publisher{nc: nc, log: log}, nil
}

// PublishHand announces a resolved hand.
func (p *Publisher) PublishHand(h game.HandResult) {
	p.publish(SubjectHandResolved, h)
}

// PublishMatch announces a finished match.
func (p *Publisher) PublishMatch(m game.MatchResult) {
	p.publish(SubjectMatchFinished, m)
}

func (p *Publisher) publish(subject string, v interface{}) {
	if p == nil || p.nc == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		p.log.Errorf("Encoding %s event: %v", subject, err)
		return
	}
	if err := p.nc.Publish(subject, data); err != nil {
		p.log.Warnf("Publishing %s event: %v", subject, err)
	}
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}
