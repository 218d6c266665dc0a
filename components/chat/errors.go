package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

// ErrorKind classifies a failed completion request.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfig
	KindAuth
	KindRateLimit
	KindUpstream
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	case KindUpstream:
		return "upstream"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Message is the text shown to the user in place of a reply.
func (k ErrorKind) Message() string {
	switch k {
	case KindConfig:
		return "Erro de configuração: Chave da API não encontrada."
	case KindAuth:
		return "Erro de autenticação: Chave da API inválida."
	case KindRateLimit:
		return "Limite de requisições atingido. Tente novamente em alguns minutos."
	case KindUpstream:
		return "Erro interno do servidor da API. Tente novamente."
	case KindMalformed:
		return "Resposta inválida da API. Tente novamente."
	default:
		return "Desculpe, ocorreu um erro. Tente novamente em alguns instantes."
	}
}

// CompletionError wraps the cause of a failed request with its kind.
type CompletionError struct {
	Kind ErrorKind
	Err  error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("chat: completion failed (%s): %v", e.Kind, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// Classify maps a completer error onto the user-facing taxonomy.
func Classify(err error) *CompletionError {
	if err == nil {
		return nil
	}
	var ce *CompletionError
	if errors.As(err, &ce) {
		return ce
	}
	return &CompletionError{Kind: kindOf(err), Err: err}
}

func kindOf(err error) ErrorKind {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return KindConfig
	}
	if errors.Is(err, llm.ErrMalformedResponse) {
		return KindMalformed
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindUpstream
	}
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden:
			return KindAuth
		case statusErr.Code == http.StatusTooManyRequests:
			return KindRateLimit
		case statusErr.Code >= 500:
			return KindUpstream
		}
	}
	return KindUnknown
}
