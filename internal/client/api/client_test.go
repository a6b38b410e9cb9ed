package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joe = Credentials{EmailAddress: "joe@smith.com", Password: "joepassword"}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(srv.URL + "/api/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_Courses(t *testing.T) {
	owner := User{ID: uuid.New(), FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"}
	course := Course{ID: uuid.New(), Title: "Bookcase", Description: "Wood", UserID: owner.ID, User: &owner}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/courses", r.URL.Path)
		_, _, hasAuth := r.BasicAuth()
		assert.False(t, hasAuth)
		writeJSON(w, http.StatusOK, map[string]any{"courses": []Course{course}})
	})

	got, err := c.Courses(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, course.Title, got[0].Title)
	assert.Equal(t, "Joe Smith", got[0].User.FullName())
}

func TestClient_Course_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Course Not Found"})
	})

	got, err := c.Course(context.Background(), uuid.New())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Course Not Found")
}

func TestClient_CreateCourse(t *testing.T) {
	id := uuid.New()

	t.Run("created", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, joe.EmailAddress, user)
			assert.Equal(t, joe.Password, pass)

			var in CourseInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Bookcase", in.Title)

			w.Header().Set("Location", "/api/courses/"+id.String())
			w.WriteHeader(http.StatusCreated)
		})

		got, errs, err := c.CreateCourse(context.Background(), CourseInput{Title: "Bookcase", Description: "d"}, joe)

		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, id, got)
	})

	t.Run("validation", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, errorBody{
				Message: "Validation failed",
				Errors:  []string{`Please provide a value for "Title"`, `Please provide a value for "Description"`},
			})
		})

		got, errs, err := c.CreateCourse(context.Background(), CourseInput{}, joe)

		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, got)
		assert.Equal(t, []string{`Please provide a value for "Title"`, `Please provide a value for "Description"`}, errs)
	})

	t.Run("missing location", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

		_, _, err := c.CreateCourse(context.Background(), CourseInput{Title: "t", Description: "d"}, joe)

		assert.ErrorIs(t, err, ErrTransport)
	})
}

func TestClient_UpdateCourse_StatusKinds(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
		want    []string
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "validation", status: http.StatusBadRequest, body: errorBody{Errors: []string{"bad"}}, want: []string{"bad"}},
		{name: "unauthorized", status: http.StatusUnauthorized, body: errorBody{Message: "Access Denied"}, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: errorBody{Message: "Access Denied"}, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: errorBody{Message: "Course Not Found"}, wantErr: ErrNotFound},
		{name: "server", status: http.StatusInternalServerError, body: errorBody{Message: "Internal Server Error"}, wantErr: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				if tt.body == nil {
					w.WriteHeader(tt.status)

					return
				}
				writeJSON(w, tt.status, tt.body)
			})

			errs, err := c.UpdateCourse(context.Background(), uuid.New(), CourseInput{Title: "t", Description: "d"}, joe)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, errs)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestClient_ServerErrorKeepsStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Internal Server Error"})
	})

	err := c.DeleteCourse(context.Background(), uuid.New(), joe)

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestClient_DeleteCourse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.DeleteCourse(context.Background(), uuid.New(), joe))
}

func TestClient_Authenticate(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		id := uuid.New()
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/users", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{"user": User{ID: id, FirstName: "Joe", EmailAddress: joe.EmailAddress}})
		})

		got, err := c.Authenticate(context.Background(), joe)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID)
	})

	t.Run("rejected", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("WWW-Authenticate", `Basic realm="catalog"`)
			writeJSON(w, http.StatusUnauthorized, errorBody{Message: "Access Denied"})
		})

		got, err := c.Authenticate(context.Background(), Credentials{EmailAddress: "a@x.com", Password: "s1"})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>"))
		})

		got, err := c.Authenticate(context.Background(), joe)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrTransport)
	})
}

func TestClient_Register(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in NewUser
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.EmailAddress == "taken@x.com" {
			writeJSON(w, http.StatusBadRequest, errorBody{Errors: []string{"The email address you entered is already in use"}})

			return
		}
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	})

	errs, err := c.Register(context.Background(), NewUser{FirstName: "A", LastName: "B", EmailAddress: "new@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = c.Register(context.Background(), NewUser{FirstName: "A", LastName: "B", EmailAddress: "taken@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, []string{"The email address you entered is already in use"}, errs)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)

	_, err := c.Courses(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrServer)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "courses", transportErr.Op)
}
