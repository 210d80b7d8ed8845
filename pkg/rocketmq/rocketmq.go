package rocketmq

import (
	"Vidhub/config"
	"Vidhub/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// Publisher 互动事件投递，未启用时所有发送直接返回
type Publisher struct {
	producer rocketmq.Producer
	topic    string
}

func NewPublisher(cfg *config.RocketMQConfig) (*Publisher, func(), error) {
	if cfg == nil || !cfg.Enabled {
		log.L.Info("rocketmq disabled, engagement events stay local")
		return &Publisher{}, func() {}, nil
	}

	opts := []producer.Option{
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
	}
	if cfg.Producer.Retry > 0 {
		opts = append(opts, producer.WithRetry(cfg.Producer.Retry))
	}
	p, err := rocketmq.NewProducer(opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Start(); err != nil {
		return nil, nil, err
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	cleanup := func() {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("shutdown producer failed", zap.Error(err))
		}
	}
	return &Publisher{producer: p, topic: cfg.Topic}, cleanup, nil
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.producer != nil
}

// Publish 同步发送，key 用于消息检索
func (p *Publisher) Publish(ctx context.Context, key string, body []byte) error {
	if !p.Enabled() {
		return nil
	}
	msg := primitive.NewMessage(p.topic, body)
	if key != "" {
		msg.WithKeys([]string{key})
	}

	res, err := p.producer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID))
	return nil
}
