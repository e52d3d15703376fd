package handlers

import (
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/metrics"
	"github.com/dvl-uiux/portfolio/project"
	"github.com/dvl-uiux/portfolio/ui"
)

type dragStartRequest struct {
	ID    string        `json:"id"`
	Boxes []project.Box `json:"boxes"`
}

type dragMoveRequest struct {
	DeltaY float64 `json:"deltaY"`
}

type orderResponse struct {
	IDs []string `json:"ids"`
}

// HandleDragStart begins dragging a card. The boxes are the layout the
// client measured when the pointer went down.
func HandleDragStart(c *fiber.Ctx) error {
	var req dragStartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid drag start")
	}
	d, ok := getPage(c).Projects.BeginDrag(req.ID, req.Boxes)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Unknown project")
	}
	return c.JSON(orderResponse{IDs: d.Preview()})
}

// HandleDragMove answers with the preview order for the pointer's offset.
func HandleDragMove(c *fiber.Ctx) error {
	var req dragMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid drag move")
	}
	d := getPage(c).Projects.Active()
	if d == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(orderResponse{IDs: d.Move(req.DeltaY)})
}

// HandleDragRelease commits the preview when the card was dropped inside
// the grid and snaps back otherwise. Either way the grid is re-rendered.
// The release may carry the pointer's final offset, which updates the
// preview first so the drop lands where the pointer let go.
func HandleDragRelease(c *fiber.Ctx) error {
	s := getPage(c)
	if d := s.Projects.Active(); d != nil {
		inZone := c.FormValue("inZone") == "true"
		if raw := c.FormValue("deltaY"); raw != "" {
			deltaY, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid drag offset")
			}
			d.Move(deltaY)
		}
		before := s.Projects.IDs()
		after := d.Release(inZone)
		outcome := "snapped_back"
		if inZone {
			outcome = "unchanged"
			if !slices.Equal(before, after) {
				outcome = "committed"
			}
		}
		metrics.ProjectReorders.WithLabelValues(outcome).Inc()
	}
	return render(c, ui.ProjectsGrid(s.Projects.Records()))
}

// HandleProjectOrder commits a whole order at once. A proposal that is not
// a permutation of the current ids leaves the order alone.
func HandleProjectOrder(c *fiber.Ctx) error {
	s := getPage(c)
	ids := splitIDs(c.FormValue("ids"))
	outcome := "committed"
	if !s.Projects.Commit(ids) {
		outcome = "rejected"
		log.Printf("[PROJECTS] Rejected order %v for page %s", ids, s.ID)
	}
	metrics.ProjectReorders.WithLabelValues(outcome).Inc()
	return render(c, ui.ProjectsGrid(s.Projects.Records()))
}

// HandleProjectImage serves the generated card image of a project.
func (h *Handlers) HandleProjectImage(c *fiber.Ctx) error {
	r, ok := findProject(h.content.Current().Projects, c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Unknown project")
	}
	b, err := h.images.Card(r)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(b)
}

func findProject(records []project.Record, id string) (project.Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return project.Record{}, false
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
