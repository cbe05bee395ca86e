//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"github.com/IBM/sarama"
)

type syncProducer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
