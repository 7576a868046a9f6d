package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"

	"github.com/wneessen/go-mail"
)

// ErrorKind classifies transport failures for operators. Callers only ever
// see a generic failure message.
type ErrorKind string

const (
	KindConfig   ErrorKind = "config"
	KindAddress  ErrorKind = "address"
	KindAuth     ErrorKind = "auth"
	KindNetwork  ErrorKind = "network"
	KindTimeout  ErrorKind = "timeout"
	KindCanceled ErrorKind = "canceled"
	KindRejected ErrorKind = "rejected"
	KindUnknown  ErrorKind = "unknown"
)

// SendError is a transport failure tagged with its kind.
type SendError struct {
	Kind ErrorKind
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("email %s error: %v", e.Kind, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first SendError in err's chain.
func KindOf(err error) ErrorKind {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Kind
	}
	return KindUnknown
}

// classify tags a raw error returned while dialing or talking to the server.
func classify(err error) *SendError {
	var (
		netErr   net.Error
		replyErr *textproto.Error
		mailErr  *mail.SendError
	)

	kind := KindUnknown
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.Is(err, context.Canceled):
		kind = KindCanceled
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	case errors.As(err, &replyErr):
		// 530/534/535 are the authentication replies
		if replyErr.Code == 530 || replyErr.Code == 534 || replyErr.Code == 535 {
			kind = KindAuth
		} else {
			kind = KindRejected
		}
	case errors.As(err, &mailErr):
		kind = KindRejected
	case errors.As(err, &netErr):
		kind = KindNetwork
	}

	return &SendError{Kind: kind, Err: err}
}
