package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/sethvargo/go-retry"
)

// MessageResponse es la única respuesta que manda el bot: mensaje público, sin flags.
func MessageResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
}

// respond entrega la respuesta con reintentos solo para errores transitorios.
// El deadline lo pone quien recibió la interacción; acá no se agrega otro.
func (r *Router) respond(ctx context.Context, i *discordgo.Interaction, content string) error {
	b := retry.WithMaxRetries(uint64(r.opts.Reply.Retries), retry.NewExponential(r.opts.Reply.Backoff))
	resp := MessageResponse(content)

	attempt := 0
	return retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		err := r.api.InteractionRespond(i, resp, discordgo.WithContext(ctx))
		if err == nil {
			return nil
		}
		// un 5xx puede haber llegado igual: el reintento lo ve como ya respondido
		if attempt > 1 && alreadyAcknowledged(err) {
			r.log.Debug("respond: acknowledged by an earlier attempt", "interaction", i.ID, "attempt", attempt)
			return nil
		}
		if retryable(err) {
			r.log.Debug("respond: retrying", "interaction", i.ID, "attempt", attempt, "err", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

// retryable: red caída, 429 o 5xx. Un 4xx no va a cambiar reintentando.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, discordgo.ErrJSONUnmarshal) {
		return false
	}
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Response == nil {
			return true
		}
		code := restErr.Response.StatusCode
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}
	return true
}

func alreadyAcknowledged(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Message != nil &&
		restErr.Message.Code == discordgo.ErrCodeInteractionHasAlreadyBeenAcknowledged
}
