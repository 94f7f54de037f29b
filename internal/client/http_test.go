package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-talent/internal/client"
	"go-talent/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_ListEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "jan", r.URL.Query().Get("name"))
		assert.Equal(t, "Software Engineer", r.URL.Query().Get("post"))
		assert.False(t, r.URL.Query().Has("affiliation"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"1","name":"Jane Doe","age":22,"affiliation":"Engineering","post":"Software Engineer","skills":["Go"]}]`)
	}))
	defer srv.Close()

	c := client.NewHTTPClient(srv.URL + "/")
	list, err := c.ListEmployees(context.Background(), domain.EmployeeFilter{Name: "jan", Post: "Software Engineer"})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Doe", list[0].Name)
}

func TestHTTPClient_ListEmployees_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	list, err := client.NewHTTPClient(srv.URL).ListEmployees(context.Background(), domain.EmployeeFilter{})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestHTTPClient_CreateEmployee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(30), body["age"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"4","name":"A","age":30,"affiliation":"HR","post":"HR Manager","skills":["Excel"]}`)
	}))
	defer srv.Close()

	age := 30
	emp, err := client.NewHTTPClient(srv.URL).CreateEmployee(context.Background(), &client.CreateEmployeeRequest{
		Name: "A", Age: &age, Affiliation: "HR", Post: "HR Manager", Skills: []string{"Excel"},
	})

	require.NoError(t, err)
	assert.Equal(t, "4", emp.ID)
}

func TestHTTPClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"Age is invalid: must be between 1 and 100","code":"INVALID_INPUT","field":"age"}`)
	}))
	defer srv.Close()

	age := 0
	_, err := client.NewHTTPClient(srv.URL).CreateEmployee(context.Background(), &client.CreateEmployeeRequest{Age: &age})

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "age", apiErr.Field)
	assert.Equal(t, "INVALID_INPUT", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "field age")
}

func TestHTTPClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.NewHTTPClient(srv.URL).GetEmployee(context.Background(), "1")

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestHTTPClient_GetEmployeeEscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/a%2Fb", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"id":"a/b","name":"N","age":1,"affiliation":"A","post":"P","skills":[]}`)
	}))
	defer srv.Close()

	emp, err := client.NewHTTPClient(srv.URL).GetEmployee(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "a/b", emp.ID)
}

func TestHTTPClient_FormOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/form-options", r.URL.Path)
		_, _ = io.WriteString(w, `{"affiliations":["HR"],"posts":["HR Manager"],"skills":["Excel"]}`)
	}))
	defer srv.Close()

	opts, err := client.NewHTTPClient(srv.URL).FormOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"HR"}, opts.Affiliations)
}
