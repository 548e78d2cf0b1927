package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetMenuGroups handles GET /api/v1/menu-groups.
func (s *Server) GetMenuGroups(ctx echo.Context) error {
	groups, err := s.getAllMenuGroupsHandler.Handle(ctx.Request().Context(), queries.NewGetAllMenuGroupsQuery())
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.MenuGroup, 0, len(groups))
	for _, g := range groups {
		response = append(response, servers.MenuGroup{Id: g.ID.Bytes(), Name: g.Name})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuGroup handles POST /api/v1/menu-groups.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var body servers.CreateMenuGroupJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewCreateMenuGroupCommand(kernel.NewUUID(), body.Name)
	if err != nil {
		return problem(ctx, err)
	}

	g, err := s.createMenuGroupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.MenuGroup{Id: g.ID().Bytes(), Name: g.Name()})
}

// GetMenus handles GET /api/v1/menus.
func (s *Server) GetMenus(ctx echo.Context) error {
	menus, err := s.getAllMenusHandler.Handle(ctx.Request().Context(), queries.NewGetAllMenusQuery())
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Menu, 0, len(menus))
	for _, m := range menus {
		response = append(response, toMenu(m))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/v1/menus. Menus are displayed unless the body
// says otherwise.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var body servers.CreateMenuJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return problem(ctx, err)
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return problem(ctx, err)
	}

	groupID, err := toKernelUUID(body.MenuGroupId)
	if err != nil {
		return problem(ctx, err)
	}

	displayed := true
	if body.Displayed != nil {
		displayed = *body.Displayed
	}

	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), body.Name, price, groupID, displayed)
	if err != nil {
		return problem(ctx, err)
	}

	m, err := s.createMenuHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenu(queries.NewMenuResponse(m)))
}

// DisplayMenu handles PUT /api/v1/menus/{menuId}/display.
func (s *Server) DisplayMenu(ctx echo.Context, menuId servers.MenuId) error {
	id, err := toKernelUUID(menuId)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewDisplayMenuCommand(id)
	if err != nil {
		return problem(ctx, err)
	}
	return s.changeMenu(ctx, cmd)
}

// HideMenu handles PUT /api/v1/menus/{menuId}/hide.
func (s *Server) HideMenu(ctx echo.Context, menuId servers.MenuId) error {
	id, err := toKernelUUID(menuId)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewHideMenuCommand(id)
	if err != nil {
		return problem(ctx, err)
	}
	return s.changeMenu(ctx, cmd)
}

// ChangeMenuPrice handles PUT /api/v1/menus/{menuId}/price.
func (s *Server) ChangeMenuPrice(ctx echo.Context, menuId servers.MenuId) error {
	var body servers.ChangeMenuPriceJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return problem(ctx, err)
	}

	id, err := toKernelUUID(menuId)
	if err != nil {
		return problem(ctx, err)
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewChangeMenuPriceCommand(id, price)
	if err != nil {
		return problem(ctx, err)
	}
	return s.changeMenu(ctx, cmd)
}

func (s *Server) changeMenu(ctx echo.Context, cmd commands.ChangeMenuCommand) error {
	m, err := s.changeMenuHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenu(queries.NewMenuResponse(m)))
}

func toMenu(r queries.MenuResponse) servers.Menu {
	return servers.Menu{
		Id:          r.ID.Bytes(),
		Name:        r.Name,
		Price:       r.Price.String(),
		MenuGroupId: r.MenuGroupID.Bytes(),
		Displayed:   r.Displayed,
	}
}
