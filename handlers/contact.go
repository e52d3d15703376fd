package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/metrics"
	"github.com/dvl-uiux/portfolio/ui"
)

var contactFields = []string{contact.FieldName, contact.FieldEmail, contact.FieldMessage}

// HandleContactField mirrors one edited field. The value comes either as
// "value" or under the field's own name, as htmx posts it from the form.
func HandleContactField(c *fiber.Ctx) error {
	field := c.FormValue("field")
	value := c.FormValue(field)
	if c.Request().PostArgs().Has("value") {
		value = c.FormValue("value")
	}
	if !getPage(c).Form.Set(field, value) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown contact field")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleContactSubmit sends the form and answers with its resulting state.
// The request blocks for the duration of the send, bounded by the send
// timeout; a second submit meanwhile gets the form as it is, still sending,
// and its fields are dropped.
func (h *Handlers) HandleContactSubmit(c *fiber.Ctx) error {
	s := getPage(c)
	args := c.Request().PostArgs()
	var edits []contact.Edit
	for _, field := range contactFields {
		if args.Has(field) {
			edits = append(edits, contact.Edit{Field: field, Value: string(args.Peek(field))})
		}
	}

	ctx := c.UserContext()
	if h.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.sendTimeout)
		defer cancel()
	}

	err := s.Form.Submit(ctx, edits...)
	switch {
	case errors.Is(err, contact.ErrSubmitInFlight):
		metrics.ContactSubmissions.WithLabelValues("in_flight").Inc()
	case errors.Is(err, contact.ErrDiscarded):
		metrics.ContactSubmissions.WithLabelValues("discarded").Inc()
		return renderStatus(c, fiber.StatusGone, ui.ExpiredPage())
	case err != nil:
		return err
	default:
		metrics.ContactSubmissions.WithLabelValues(s.Form.State().Status.String()).Inc()
	}
	return render(c, ui.ContactForm(s.Form.State()))
}
