package realtime

import (
	"context"
	"encoding/json"
	"time"

	"direct-chat-api/apperror"
	"direct-chat-api/config/logger"
	"direct-chat-api/dto"
	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
	"direct-chat-api/enum"
	"direct-chat-api/security"
	"direct-chat-api/usecase"
)

// Router is the protocol state machine for realtime connections. A connection
// moves Connecting -> Authenticated -> Closed; there is no resume, every
// reconnect starts fresh. The Router owns the Registry: all registry mutation
// and fan-out happens on the paths here.
type Router struct {
	registry *Registry
	jwt      *security.JWT
	messages usecase.MessageUsecase
	users    usecase.UserUsecase
	log      *logger.AppLogger
}

func NewRouter(registry *Registry, jwt *security.JWT, messages usecase.MessageUsecase, users usecase.UserUsecase, log *logger.AppLogger) *Router {
	return &Router{
		registry: registry,
		jwt:      jwt,
		messages: messages,
		users:    users,
		log:      log,
	}
}

// HandleConnection runs the full lifecycle of one connection and returns when
// it is closed. The credential is the only thing that can refuse a
// connection; once authenticated, no single failed operation closes it.
func (r *Router) HandleConnection(token string, conn Conn) {
	claims, err := r.jwt.Authenticate(token)
	if err != nil {
		r.writeError(conn, "authentication failed")
		_ = conn.Close()
		return
	}
	userID := claims.UserID

	ctx := context.Background()

	r.registry.Register(userID, conn)
	if err := r.users.TouchLastSeen(ctx, userID, time.Now()); err != nil {
		r.log.WS.Warning.Warn().Err(err).Str("userId", userID).Msg("failed to touch last seen on connect")
	}
	r.broadcastPresence(userID, true)
	r.log.WS.Info.Info().Str("userId", userID).Msg("user connected")

	defer r.dropConnection(ctx, userID, conn)

	r.readLoop(ctx, userID, conn)
}

// dropConnection is idempotent: presence goes offline only when this handle
// is still the registered one, so a stale disconnect after a newer login
// neither evicts the new connection nor double-broadcasts.
func (r *Router) dropConnection(ctx context.Context, userID string, conn Conn) {
	_ = conn.Close()
	if !r.registry.Unregister(userID, conn) {
		return
	}
	if err := r.users.TouchLastSeen(ctx, userID, time.Now()); err != nil {
		r.log.WS.Warning.Warn().Err(err).Str("userId", userID).Msg("failed to touch last seen on disconnect")
	}
	r.broadcastPresence(userID, false)
	r.log.WS.Info.Info().Str("userId", userID).Msg("user disconnected")
}

func (r *Router) readLoop(ctx context.Context, userID string, conn Conn) {
	for {
		var envelope dto.Envelope
		if err := conn.ReadJSON(&envelope); err != nil {
			return
		}
		r.dispatch(ctx, userID, conn, &envelope)
	}
}

// dispatch handles a single inbound event. Malformed payloads and failed
// operations surface as an error event to the sender only.
func (r *Router) dispatch(ctx context.Context, userID string, conn Conn, envelope *dto.Envelope) {
	switch envelope.Event {
	case enum.EventSendMessage:
		r.handleSendMessage(ctx, userID, conn, envelope.Data)
	case enum.EventTyping:
		r.handleTyping(userID, conn, envelope.Data, true)
	case enum.EventStopTyping:
		r.handleTyping(userID, conn, envelope.Data, false)
	case enum.EventMarkRead:
		r.handleMarkRead(ctx, userID, conn, envelope.Data)
	default:
		r.writeError(conn, "unknown event")
	}
}

func (r *Router) handleSendMessage(ctx context.Context, userID string, conn Conn, data json.RawMessage) {
	var payload req.MessageRequest
	if err := json.Unmarshal(data, &payload); err != nil {
		r.writeError(conn, "malformed payload")
		return
	}

	message, err := r.messages.SendMessage(ctx, userID, &payload)
	if err != nil {
		r.log.WS.Error.Error().Err(err).Str("userId", userID).Msg("send failed")
		r.writeError(conn, apperror.PublicMessage(err))
		return
	}

	// The ack carries the persisted row; it never precedes durability.
	r.write(conn, enum.EventMessageSent, message)
	r.DeliverMessage(payload.ReceiverID, message)
}

// DeliverMessage pushes a persisted message to the receiver's connection if
// one is registered: exactly one push when online, zero when offline (the
// receiver catches up via history on the next connect). The HTTP forward
// endpoint shares this path so forwarded messages follow the same rule.
func (r *Router) DeliverMessage(receiverID string, message res.MessageResponse) {
	receiver, ok := r.registry.Lookup(receiverID)
	if !ok {
		return
	}
	r.write(receiver, enum.EventNewMessage, message)
}

func (r *Router) handleTyping(userID string, conn Conn, data json.RawMessage, typing bool) {
	var payload dto.TargetedEvent
	if err := json.Unmarshal(data, &payload); err != nil || payload.ReceiverID == "" {
		r.writeError(conn, "malformed payload")
		return
	}

	receiver, ok := r.registry.Lookup(payload.ReceiverID)
	if !ok {
		return
	}
	r.write(receiver, enum.EventUserTyping, dto.TypingEvent{UserID: userID, Typing: typing})
}

func (r *Router) handleMarkRead(ctx context.Context, userID string, conn Conn, data json.RawMessage) {
	var payload dto.MarkReadEvent
	if err := json.Unmarshal(data, &payload); err != nil || payload.ContactID == "" {
		r.writeError(conn, "malformed payload")
		return
	}

	if _, err := r.messages.MarkRead(ctx, userID, payload.ContactID); err != nil {
		r.log.WS.Error.Error().Err(err).Str("userId", userID).Msg("mark read failed")
		r.writeError(conn, apperror.PublicMessage(err))
		return
	}

	contact, ok := r.registry.Lookup(payload.ContactID)
	if !ok {
		return
	}
	r.write(contact, enum.EventMessagesRead, dto.ReadReceiptEvent{UserID: userID})
}

func (r *Router) broadcastPresence(userID string, online bool) {
	event := enum.EventUserOnline
	if !online {
		event = enum.EventUserOffline
	}
	payload := dto.PresenceEvent{UserID: userID, Online: online}

	r.registry.Each(func(otherID string, other Conn) {
		if otherID == userID {
			return
		}
		r.write(other, event, payload)
	})
}

func (r *Router) write(conn Conn, event enum.Event, data interface{}) {
	if err := conn.WriteJSON(dto.OutEnvelope{Event: event, Data: data}); err != nil {
		r.log.WS.Warning.Warn().Err(err).Str("event", string(event)).Msg("write failed")
	}
}

func (r *Router) writeError(conn Conn, message string) {
	r.write(conn, enum.EventError, dto.ErrorEvent{Message: message})
}
