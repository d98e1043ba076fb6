package services

import (
	"errors"
	"testing"

	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type fakeMessageStore struct {
	created     []*model.Message
	createErr   error
	statusID    string
	statusValue string
	statusCalls int
	statusErr   error
}

func (f *fakeMessageStore) CreateMessage(message *model.Message) (*model.Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	message.ID = "01936b2a-0000-7000-8000-00000000000f"
	f.created = append(f.created, message)
	return message, nil
}

func (f *fakeMessageStore) SetMessageEmailStatus(id, status string) error {
	f.statusCalls++
	f.statusID = id
	f.statusValue = status
	return f.statusErr
}

func (f *fakeMessageStore) GetMessage(id string) (*model.Message, error)         { return nil, nil }
func (f *fakeMessageStore) GetMessages(unreadOnly bool) ([]model.Message, error) { return nil, nil }
func (f *fakeMessageStore) MarkMessageRead(id string) error                      { return nil }
func (f *fakeMessageStore) DeleteMessage(id string) error                        { return nil }

type fakeNotifier struct {
	configured bool
	sendErr    error
	sent       []*model.Message
}

func (f *fakeNotifier) Configured() bool {
	return f.configured
}

func (f *fakeNotifier) SendContactNotification(message *model.Message) error {
	f.sent = append(f.sent, message)
	return f.sendErr
}

func submitRequest() dto.SubmitMessageRequest {
	return dto.SubmitMessageRequest{
		SenderName:  "  Huda  ",
		SenderEmail: "huda@example.com",
		ServiceType: "MVP",
		Body:        "I want to build a prototype.",
	}
}

func TestSubmit_NotificationSuccessMarksSent(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := &fakeNotifier{configured: true}
	svc := &MessageService{store: store, notifier: notifier}

	message, err := svc.Submit(submitRequest())

	require.NoError(t, err)
	assert.Equal(t, shared.EmailStatusSent, message.EmailStatus)
	assert.Equal(t, message.ID, store.statusID)
	assert.Equal(t, shared.EmailStatusSent, store.statusValue)
	require.Len(t, notifier.sent, 1)
}

func TestSubmit_NotificationFailureMarksFailedButSucceeds(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := &fakeNotifier{configured: true, sendErr: errors.New("smtp timeout")}
	svc := &MessageService{store: store, notifier: notifier}

	message, err := svc.Submit(submitRequest())

	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, shared.EmailStatusFailed, message.EmailStatus)
	assert.Equal(t, shared.EmailStatusFailed, store.statusValue)
}

func TestSubmit_UnconfiguredNotifierLeavesPending(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := &fakeNotifier{configured: false}
	svc := &MessageService{store: store, notifier: notifier}

	message, err := svc.Submit(submitRequest())

	require.NoError(t, err)
	assert.Equal(t, shared.EmailStatusPending, message.EmailStatus)
	assert.Empty(t, notifier.sent)
	assert.Equal(t, 0, store.statusCalls)
}

func TestSubmit_StatusWriteFailureKeepsReportedPending(t *testing.T) {
	store := &fakeMessageStore{statusErr: errors.New("connection reset")}
	notifier := &fakeNotifier{configured: true}
	svc := &MessageService{store: store, notifier: notifier}

	message, err := svc.Submit(submitRequest())

	require.NoError(t, err)
	assert.Equal(t, shared.EmailStatusPending, message.EmailStatus)
}

func TestSubmit_StoreErrorFailsRequest(t *testing.T) {
	store := &fakeMessageStore{createErr: errors.New("connection refused")}
	notifier := &fakeNotifier{configured: true}
	svc := &MessageService{store: store, notifier: notifier}

	message, err := svc.Submit(submitRequest())

	require.Error(t, err)
	assert.Nil(t, message)
	assert.Empty(t, notifier.sent)
}

func TestSubmit_TrimsFieldsAndDefaultsLocale(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := &fakeNotifier{configured: false}
	svc := &MessageService{store: store, notifier: notifier}

	_, err := svc.Submit(submitRequest())

	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, "Huda", store.created[0].SenderName)
	assert.Equal(t, shared.LocaleArabic, store.created[0].Locale)
}
