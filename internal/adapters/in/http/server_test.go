package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/memory"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/time/rate"
)

type orderUoWFactory struct{ f ports.UnitOfWorkFactory }

func (o orderUoWFactory) Create() commands.OrderUoW { return o.f.Create() }

type menuUoWFactory struct{ f ports.UnitOfWorkFactory }

func (m menuUoWFactory) Create() commands.MenuUoW { return m.f.Create() }

type tableUoWFactory struct{ f ports.UnitOfWorkFactory }

func (t tableUoWFactory) Create() commands.TableUoW { return t.f.Create() }

type countingDispatcher struct {
	calls int
}

func (d *countingDispatcher) RequestDelivery(context.Context, kernel.UUID, decimal.Decimal, kernel.Address) error {
	d.calls++
	return nil
}

type ServerTestSuite struct {
	suite.Suite
	e          *echo.Echo
	dispatcher *countingDispatcher
}

func (s *ServerTestSuite) SetupTest() {
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	reader := factory.Create()
	s.dispatcher = &countingDispatcher{}

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:          commands.NewCreateOrderCommandHandler(orderUoWFactory{factory}),
		ChangeOrderStatus:    commands.NewChangeOrderStatusCommandHandler(orderUoWFactory{factory}, s.dispatcher),
		CreateOrderTable:     commands.NewCreateOrderTableCommandHandler(tableUoWFactory{factory}),
		ChangeTableOccupancy: commands.NewChangeTableOccupancyCommandHandler(tableUoWFactory{factory}),
		ChangeNumberOfGuests: commands.NewChangeNumberOfGuestsCommandHandler(tableUoWFactory{factory}),
		CreateTableGroup:     commands.NewCreateTableGroupCommandHandler(tableUoWFactory{factory}),
		DeleteTableGroup:     commands.NewDeleteTableGroupCommandHandler(tableUoWFactory{factory}),
		CreateMenuGroup:      commands.NewCreateMenuGroupCommandHandler(menuUoWFactory{factory}),
		CreateMenu:           commands.NewCreateMenuCommandHandler(menuUoWFactory{factory}),
		ChangeMenu:           commands.NewChangeMenuCommandHandler(menuUoWFactory{factory}),
		GetAllOrders:         queries.NewGetAllOrdersQueryHandler(reader.OrderRepository()),
		GetActiveOrders:      queries.NewGetActiveOrdersQueryHandler(memory.NewActiveOrderReader(store)),
		GetAllOrderTables:    queries.NewGetAllOrderTablesQueryHandler(reader.OrderTableRepository()),
		GetAllMenuGroups:     queries.NewGetAllMenuGroupsQueryHandler(reader.MenuGroupRepository()),
		GetAllMenus:          queries.NewGetAllMenusQueryHandler(reader.MenuRepository()),
	})

	e, err := httpin.NewRouter(server, nil)
	s.Require().NoError(err)
	s.e = e
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *nethttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func (s *ServerTestSuite) createMenu(price string) servers.Menu {
	rec := s.do(nethttp.MethodPost, "/api/v1/menu-groups", `{"name":"Chicken"}`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code, rec.Body.String())
	var group servers.MenuGroup
	s.decode(rec, &group)

	rec = s.do(nethttp.MethodPost, "/api/v1/menus",
		`{"name":"Fried","price":"`+price+`","menuGroupId":"`+group.Id.String()+`"}`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code, rec.Body.String())
	var m servers.Menu
	s.decode(rec, &m)
	return m
}

func (s *ServerTestSuite) createOrder(m servers.Menu, extra string) *httptest.ResponseRecorder {
	return s.do(nethttp.MethodPost, "/api/v1/orders",
		`{"orderLineItems":[{"menuId":"`+m.Id.String()+`","quantity":2,"price":"`+m.Price+`"}],`+extra+`}`)
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(nethttp.MethodGet, "/health", "")

	s.Equal(nethttp.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestCreateMenu_DisplayedByDefault() {
	m := s.createMenu("16000")

	s.True(m.Displayed)
	s.Equal("16000", m.Price)

	rec := s.do(nethttp.MethodGet, "/api/v1/menus", "")
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	var menus []servers.Menu
	s.decode(rec, &menus)
	s.Len(menus, 1)
}

func (s *ServerTestSuite) TestDeliveryOrder_AcceptRequestsRider() {
	m := s.createMenu("16000")

	rec := s.createOrder(m, `"orderType":"DELIVERY","deliveryAddress":"12 Baker Street"`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code, rec.Body.String())
	var created servers.Order
	s.decode(rec, &created)
	s.Equal(servers.OrderStatusWAITING, created.OrderStatus)
	s.Equal("32000", created.TotalAmount)
	s.Require().NotNil(created.DeliveryAddress)

	rec = s.do(nethttp.MethodPut, "/api/v1/orders/"+created.Id.String()+"/accept", "")
	s.Require().Equal(nethttp.StatusOK, rec.Code, rec.Body.String())
	var accepted servers.Order
	s.decode(rec, &accepted)
	s.Equal(servers.OrderStatusACCEPTED, accepted.OrderStatus)
	s.Equal(1, s.dispatcher.calls)

	rec = s.do(nethttp.MethodGet, "/api/v1/orders/active", "")
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	var board []servers.ActiveOrder
	s.decode(rec, &board)
	s.Require().Len(board, 1)
	s.Equal(1, board[0].ItemCount)
}

func (s *ServerTestSuite) TestDineIn_EmptyTableIsConflict() {
	m := s.createMenu("16000")
	rec := s.do(nethttp.MethodPost, "/api/v1/order-tables", `{"name":"T1"}`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code)
	var t servers.OrderTable
	s.decode(rec, &t)
	s.True(t.Empty)

	rec = s.createOrder(m, `"orderType":"DINE_IN","orderTableId":"`+t.Id.String()+`"`)

	s.Equal(nethttp.StatusConflict, rec.Code, rec.Body.String())
}

func (s *ServerTestSuite) TestTableLifecycle() {
	rec := s.do(nethttp.MethodPost, "/api/v1/order-tables", `{"name":"T1"}`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code)
	var t servers.OrderTable
	s.decode(rec, &t)

	rec = s.do(nethttp.MethodPut, "/api/v1/order-tables/"+t.Id.String()+"/sit", "")
	s.Require().Equal(nethttp.StatusOK, rec.Code)

	rec = s.do(nethttp.MethodPut, "/api/v1/order-tables/"+t.Id.String()+"/number-of-guests", `{"numberOfGuests":3}`)
	s.Require().Equal(nethttp.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &t)
	s.Equal(3, t.NumberOfGuests)
	s.False(t.Empty)

	rec = s.do(nethttp.MethodPut, "/api/v1/order-tables/"+t.Id.String()+"/number-of-guests", `{"numberOfGuests":-1}`)
	s.Equal(nethttp.StatusBadRequest, rec.Code)

	rec = s.do(nethttp.MethodPut, "/api/v1/order-tables/"+t.Id.String()+"/clear", "")
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	s.decode(rec, &t)
	s.True(t.Empty)
	s.Equal(0, t.NumberOfGuests)
}

func (s *ServerTestSuite) TestTableGroup_CreateAndDelete() {
	ids := make([]string, 0, 2)
	for _, name := range []string{"T1", "T2"} {
		rec := s.do(nethttp.MethodPost, "/api/v1/order-tables", `{"name":"`+name+`"}`)
		s.Require().Equal(nethttp.StatusCreated, rec.Code)
		var t servers.OrderTable
		s.decode(rec, &t)
		ids = append(ids, `"`+t.Id.String()+`"`)
	}

	rec := s.do(nethttp.MethodPost, "/api/v1/table-groups", `{"orderTables":[`+strings.Join(ids, ",")+`]}`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code, rec.Body.String())
	var group servers.TableGroup
	s.decode(rec, &group)
	s.Len(group.OrderTables, 2)

	rec = s.do(nethttp.MethodDelete, "/api/v1/table-groups/"+group.Id.String(), "")
	s.Equal(nethttp.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(nethttp.MethodDelete, "/api/v1/table-groups/"+group.Id.String(), "")
	s.Equal(nethttp.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestTableGroup_SingleTableIsBadRequest() {
	rec := s.do(nethttp.MethodPost, "/api/v1/order-tables", `{"name":"T1"}`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code)
	var t servers.OrderTable
	s.decode(rec, &t)

	rec = s.do(nethttp.MethodPost, "/api/v1/table-groups", `{"orderTables":["`+t.Id.String()+`"]}`)

	s.Equal(nethttp.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestMenuOperations() {
	m := s.createMenu("16000")

	rec := s.do(nethttp.MethodPut, "/api/v1/menus/"+m.Id.String()+"/hide", "")
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	s.decode(rec, &m)
	s.False(m.Displayed)

	rec = s.createOrder(m, `"orderType":"TAKEOUT"`)
	s.Equal(nethttp.StatusBadRequest, rec.Code, "hidden menus cannot be ordered")

	rec = s.do(nethttp.MethodPut, "/api/v1/menus/"+m.Id.String()+"/price", `{"price":"18000"}`)
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	s.decode(rec, &m)
	s.Equal("18000", m.Price)

	rec = s.do(nethttp.MethodPut, "/api/v1/menus/"+m.Id.String()+"/price", `{"price":"-1"}`)
	s.Equal(nethttp.StatusBadRequest, rec.Code)

	rec = s.do(nethttp.MethodPut, "/api/v1/menus/"+m.Id.String()+"/price", `{"price":"12.345"}`)
	s.Equal(nethttp.StatusBadRequest, rec.Code, "sub-cent prices cannot be stored exactly")

	rec = s.do(nethttp.MethodPost, "/api/v1/menus",
		`{"name":"Huge","price":"100000000000000000","menuGroupId":"`+m.MenuGroupId.String()+`"}`)
	s.Equal(nethttp.StatusBadRequest, rec.Code)

	rec = s.do(nethttp.MethodPut, "/api/v1/menus/"+m.Id.String()+"/display", "")
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	s.decode(rec, &m)
	s.True(m.Displayed)
}

func (s *ServerTestSuite) TestErrorMapping() {
	m := s.createMenu("16000")
	rec := s.createOrder(m, `"orderType":"TAKEOUT"`)
	s.Require().Equal(nethttp.StatusCreated, rec.Code)
	var o servers.Order
	s.decode(rec, &o)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown order", nethttp.MethodPut, "/api/v1/orders/" + kernel.NewUUID().String() + "/accept", "", nethttp.StatusNotFound},
		{"serve waiting order", nethttp.MethodPut, "/api/v1/orders/" + o.Id.String() + "/serve", "", nethttp.StatusConflict},
		{"start delivery of takeout", nethttp.MethodPut, "/api/v1/orders/" + o.Id.String() + "/start-delivery", "", nethttp.StatusConflict},
		{"malformed id", nethttp.MethodPut, "/api/v1/orders/not-a-uuid/accept", "", nethttp.StatusBadRequest},
		{"unknown order type", nethttp.MethodPost, "/api/v1/orders", `{"orderType":"BOGUS","orderLineItems":[]}`, nethttp.StatusBadRequest},
		{"empty line items", nethttp.MethodPost, "/api/v1/orders", `{"orderType":"TAKEOUT","orderLineItems":[]}`, nethttp.StatusBadRequest},
		{"delivery without address", nethttp.MethodPost, "/api/v1/orders",
			`{"orderType":"DELIVERY","orderLineItems":[{"menuId":"` + m.Id.String() + `","quantity":1,"price":"16000"}]}`,
			nethttp.StatusBadRequest},
		{"price mismatch", nethttp.MethodPost, "/api/v1/orders",
			`{"orderType":"TAKEOUT","orderLineItems":[{"menuId":"` + m.Id.String() + `","quantity":1,"price":"15000"}]}`,
			nethttp.StatusBadRequest},
		{"missing body field", nethttp.MethodPost, "/api/v1/menu-groups", `{}`, nethttp.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(tt.method, tt.path, tt.body)
			s.Equal(tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestRateLimiter(t *testing.T) {
	limiter := httpin.NewRateLimiter(rate.Limit(1), 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "buckets are per client")
}

func TestRateLimiter_Middleware(t *testing.T) {
	e := echo.New()
	e.Use(httpin.NewRateLimiter(rate.Limit(1), 1).Middleware())
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(nethttp.StatusOK) })

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(nethttp.MethodGet, "/ping", nil))
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(nethttp.MethodGet, "/ping", nil))

	require.Equal(t, nethttp.StatusOK, first.Code)
	assert.Equal(t, nethttp.StatusTooManyRequests, second.Code)
}
