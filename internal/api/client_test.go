package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/orderstatus"
)

// recorder captures the last request seen by a test server.
type recorder struct {
	hits   atomic.Int32
	method string
	path   string
	query  string
	auth   string
	body   []byte
}

func newServer(t *testing.T, rec *recorder, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.hits.Add(1)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestErrorDetailIsMessage(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusNotFound, `{"detail":"Not found"}`)
	c := api.New(srv.URL)

	_, err := c.Order(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, "Not found", err.Error())
	assert.True(t, api.IsNotFound(err))

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestErrorWithoutDetailUsesGenericMessage(t *testing.T) {
	tests := map[string]string{
		"empty object": `{}`,
		"list detail":  `{"detail":[{"loc":["body","email"],"msg":"field required"}]}`,
		"not json":     `Internal Server Error`,
		"null detail":  `{"detail":null}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			srv := newServer(t, rec, http.StatusUnprocessableEntity, body)
			err := api.New(srv.URL).Do(context.Background(), http.MethodGet, "/menu", nil, nil)
			require.Error(t, err)
			assert.Equal(t, api.DefaultErrorMessage, err.Error())
		})
	}
}

func TestDoRawBodyUnchanged(t *testing.T) {
	body := `{"total_orders":3,"extra":{"nested":[1,2,3]}}`
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, body)

	var raw json.RawMessage
	err := api.New(srv.URL).Do(context.Background(), http.MethodGet, "/admin/dashboard", nil, &raw)
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
	assert.Equal(t, "/api/admin/dashboard", rec.path)
}

func TestBearerTokenAttachedOnlyWhenSet(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, `[]`)
	c := api.New(srv.URL + "/")

	_, err := c.Plans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.auth)

	c.SetToken("abc.def.ghi")
	_, err = c.Plans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc.def.ghi", rec.auth)

	c.SetToken("")
	_, err = c.MyOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.auth)
}

func TestMenuDayQuery(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, `[{"id":"1","name_en":"Dal Tadka","category":"dal","day_of_week":"daily","is_available":true}]`)
	c := api.New(srv.URL)

	items, err := c.Menu(context.Background(), "Monday")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dal Tadka", items[0].NameEN)
	assert.Equal(t, "day=monday", rec.query)

	_, err = c.Menu(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, rec.query)
}

func TestAllOrdersStatusFilter(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, `[]`)
	c := api.New(srv.URL)

	_, err := c.AllOrders(context.Background(), orderstatus.Preparing)
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/all", rec.path)
	assert.Equal(t, "status=preparing", rec.query)

	_, err = c.AllOrders(context.Background(), "bogus")
	require.Error(t, err)
	assert.True(t, api.IsValidation(err))
}

func TestUpdateOrderStatusBody(t *testing.T) {
	rec := &recorder{}
	id := uuid.NewString()
	srv := newServer(t, rec, http.StatusOK, `{"id":"`+id+`","status":"preparing"}`)

	o, err := api.New(srv.URL).UpdateOrderStatus(context.Background(), id, orderstatus.Preparing)
	require.NoError(t, err)
	assert.Equal(t, orderstatus.Preparing, o.CurrentStatus())
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/orders/"+id+"/status", rec.path)
	assert.JSONEq(t, `{"status":"preparing"}`, string(rec.body))
}

func TestValidationHappensBeforeNetwork(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, `{}`)
	c := api.New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, api.LoginRequest{Email: "a@b.c"})
	assert.True(t, api.IsValidation(err))

	_, err = c.Register(ctx, api.RegisterRequest{Name: "A", Email: "a@b.c", Password: "x"})
	assert.True(t, api.IsValidation(err))

	_, err = c.Order(ctx, "not-an-id")
	assert.True(t, api.IsValidation(err))

	_, err = c.CreateOrder(ctx, api.CreateOrderRequest{
		Items:           []api.OrderItem{{Name: "Lunch Tiffin", Qty: 3, Price: 80}},
		Total:           200,
		OrderType:       "single",
		DeliveryAddress: "Kothrud",
	})
	assert.True(t, api.IsValidation(err))

	_, err = c.CreateMenuItem(ctx, api.MenuItemInput{NameEN: "Poha", NameMR: "पोहे", Category: "breakfast", DayOfWeek: "daily"})
	assert.True(t, api.IsValidation(err))

	_, err = c.UpdateMenuItem(ctx, uuid.NewString(), api.MenuItemPatch{})
	assert.True(t, api.IsValidation(err))

	assert.Equal(t, int32(0), rec.hits.Load())
}

func TestCreateOrderTotalMatchesItems(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, `{"id":"x","items":[{"name":"Lunch Tiffin","qty":3,"price":80}],"total":240}`)

	o, err := api.New(srv.URL).CreateOrder(context.Background(), api.CreateOrderRequest{
		Items:           []api.OrderItem{{Name: "Lunch Tiffin", Qty: 3, Price: 80}},
		Total:           240,
		OrderType:       "single",
		DeliveryAddress: "Flat 301, Kothrud",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(240), o.Total)
	// The server omitted status, which means pending.
	assert.Equal(t, orderstatus.Pending, o.CurrentStatus())
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := api.New(url).Plans(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrTransport)
}

func TestDecodeError(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, rec, http.StatusOK, `{"not":"a list"}`)

	_, err := api.New(srv.URL).Plans(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrDecode)
}
