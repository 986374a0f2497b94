package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/pkg/pacific"
)

const dispatchTestTopic = "SEND_REMINDER_EMAIL_TEST"

func newDispatchFixture(t *testing.T, m *fakeMailer, clockDay time.Time) (*fakeFactory, *gochannel.GoChannel) {
	t.Helper()
	factory := newFakeFactory()
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			BlockPublishUntilSubscriberAck: true,
		},
		watermill.NopLogger{},
	)
	svc := NewMailDispatchService(
		pubSub,
		dispatchTestTopic,
		factory,
		m,
		pacific.FixedClock{T: clockDay},
		"https://app.local",
		noopLogger{},
	)
	require.NoError(t, svc.Consume(context.Background()))
	return factory, pubSub
}

// publishReminder blocks until the dispatcher acked the message, same
// as production publishes do.
func publishReminder(t *testing.T, pubSub *gochannel.GoChannel, rm dto.ReminderMessage) {
	t.Helper()
	payload, err := json.Marshal(rm)
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(dispatchTestTopic, message.NewMessage(watermill.NewUUID(), payload)))
}

func TestDispatchSendsAndStampsBeforePublishReturns(t *testing.T) {
	today := day(2024, time.June, 1)
	m := &fakeMailer{}
	factory, pubSub := newDispatchFixture(t, m, today)

	evt := seedOwnedEvent(factory, "owner@example.com", pacific.AddDays(today, 30))

	publishReminder(t, pubSub, dto.ReminderMessage{
		EventId:    evt.Id,
		To:         "owner@example.com",
		EventTitle: evt.Title,
		VendorName: evt.VendorName,
		EventDate:  evt.EventDate,
		DaysLeft:   30,
	})

	// Publish has returned, so the send and the stamp must both be
	// visible already. A caller exiting right now loses nothing.
	assert.Equal(t, []string{"owner@example.com"}, m.reminders)
	stored := factory.store.events[0]
	require.NotNil(t, stored.LastReminderSent)
	assert.True(t, stored.LastReminderSent.Equal(today))
}

func TestDispatchFailedSendLeavesStampUnset(t *testing.T) {
	today := day(2024, time.June, 1)
	m := &fakeMailer{failNext: true}
	factory, pubSub := newDispatchFixture(t, m, today)

	evt := seedOwnedEvent(factory, "owner@example.com", pacific.AddDays(today, 30))

	publishReminder(t, pubSub, dto.ReminderMessage{
		EventId:    evt.Id,
		To:         "owner@example.com",
		EventTitle: evt.Title,
		VendorName: evt.VendorName,
		EventDate:  evt.EventDate,
		DaysLeft:   30,
	})

	// No stamp means the next scan queues the event again.
	assert.Empty(t, m.reminders)
	assert.Nil(t, factory.store.events[0].LastReminderSent)
}

func TestDispatchAcksMalformedPayload(t *testing.T) {
	today := day(2024, time.June, 1)
	m := &fakeMailer{}
	factory, pubSub := newDispatchFixture(t, m, today)

	seedOwnedEvent(factory, "owner@example.com", pacific.AddDays(today, 30))

	err := pubSub.Publish(dispatchTestTopic, message.NewMessage(watermill.NewUUID(), []byte("not json")))
	require.NoError(t, err)

	assert.Empty(t, m.reminders)
	assert.Nil(t, factory.store.events[0].LastReminderSent)
}

func TestDispatchFailureRecoversOnNextScan(t *testing.T) {
	today := day(2024, time.June, 1)
	m := &fakeMailer{failNext: true}
	factory, pubSub := newDispatchFixture(t, m, today)

	seedOwnedEvent(factory, "owner@example.com", pacific.AddDays(today, 30))

	scanner := NewReminderService(factory, &gochannelPublisher{pubSub: pubSub}, pacific.FixedClock{T: today}, noopLogger{})

	res, err := scanner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Queued)
	assert.Nil(t, factory.store.events[0].LastReminderSent)

	// Relay back up: the same scan on the same day queues it again
	// because nothing was stamped.
	m.failNext = false
	res, err = scanner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Queued)
	require.NotNil(t, factory.store.events[0].LastReminderSent)
	assert.True(t, factory.store.events[0].LastReminderSent.Equal(today))
}

// gochannelPublisher routes scan output through the real topic instead
// of the capture fake.
type gochannelPublisher struct {
	pubSub *gochannel.GoChannel
}

func (p *gochannelPublisher) Publish(_ context.Context, payload []byte) error {
	return p.pubSub.Publish(dispatchTestTopic, message.NewMessage(watermill.NewUUID(), payload))
}
