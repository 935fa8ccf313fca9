package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListMenu handles GET /api/v1/menu. It needs no principal.
func (s *Server) ListMenu(c echo.Context) error {
	onlyAvailable, err := queryBool(c, "available")
	if err != nil {
		return err
	}

	items, err := s.handlers.ListMenu.Handle(c.Request().Context(), queries.NewListMenuQuery(onlyAvailable))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, menuItemsResponse(items))
}

func (s *Server) CreateMenuItem(c echo.Context) error {
	var req MenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return err
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(principalFrom(c), itemID, req.Name, req.Description, req.Category, price)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, MenuItemResponse{
		ID:          itemID.String(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       price.String(),
		Available:   true,
	})
}

func (s *Server) SetMenuItemAvailability(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AvailabilityRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(principalFrom(c), id, *req.Available)
	if err != nil {
		return err
	}

	if err = s.handlers.SetMenuItemAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMenuItemCommand(principalFrom(c), id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
