package schoolapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
	"github.com/edumax/schoolapp/internal/domain/school"
	"github.com/edumax/schoolapp/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil), srv
}

func TestClient_LoginSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@app.com", body["email"])
		assert.Equal(t, "1234", body["senha"])

		json.NewEncoder(w).Encode(map[string]string{"token": "t1", "perfil": "admin"})
	}))

	res, err := client.Login(context.Background(), "admin@app.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, "t1", res.Token)
	assert.Equal(t, domainauth.RoleAdmin, res.Role)
}

func TestClient_LoginMissingRoleDefaultsToAluno(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "t2"})
	}))

	res, err := client.Login(context.Background(), "aluno@app.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAluno, res.Role)
}

func TestClient_LoginFailurePrefersServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))

	_, err := client.Login(context.Background(), "admin@app.com", "wrong")
	var gwErr *ports.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusUnauthorized, gwErr.Code)
	assert.Equal(t, "Invalid credentials", gwErr.Message)
}

func TestClient_LoginFailureWithoutMessageFallsBack(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Login(context.Background(), "admin@app.com", "1234")
	var gwErr *ports.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, genericFailure, gwErr.Message)
}

func TestClient_ValidationRejectsBeforeIO(t *testing.T) {
	var hits atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	ctx := context.Background()

	var valErr *ports.ValidationError

	_, err := client.Login(ctx, "", "1234")
	require.ErrorAs(t, err, &valErr)

	_, err = client.Login(ctx, "admin@app.com", "")
	require.ErrorAs(t, err, &valErr)

	_, err = client.ReportFor(ctx, 0)
	require.ErrorAs(t, err, &valErr)

	err = client.CreateStudent(ctx, school.Student{Name: "Ana", Registration: "", Course: "ES"})
	require.ErrorAs(t, err, &valErr)

	err = client.CreateProfessor(ctx, school.Professor{Name: "", Email: "p@app.com", Title: "Dr"})
	require.ErrorAs(t, err, &valErr)

	err = client.CreateDiscipline(ctx, school.Discipline{Name: "Cálculo"})
	require.ErrorAs(t, err, &valErr)

	assert.Zero(t, hits.Load(), "validation failures must not reach the server")
}

func TestClient_ReportForEmptyIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/boletim/7", r.URL.Path)
		w.Write([]byte("[]"))
	}))

	rows, err := client.ReportFor(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestClient_ReportForDecodesRows(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"disciplina_id":3,"disciplina_nome":"Cálculo I","nota1":8.5,"nota2":7,"media":7.75}]`))
	}))

	rows, err := client.ReportFor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, school.ReportRow{
		DisciplineID:   3,
		DisciplineName: "Cálculo I",
		Grade1:         8.5,
		Grade2:         7,
		Average:        7.75,
	}, rows[0])
}

func TestClient_CreateStudentSendsWireFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/alunos", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ana Souza", body["nome"])
		assert.Equal(t, "2024001", body["matricula"])
		assert.Equal(t, "Engenharia", body["curso"])
		w.WriteHeader(http.StatusCreated)
	}))

	err := client.CreateStudent(context.Background(), school.Student{
		Name:         "Ana Souza",
		Registration: "2024001",
		Course:       "Engenharia",
	})
	require.NoError(t, err)
}

func TestClient_BearerTokenInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, func() string { return "session-token" })
	_, err := client.ReportFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestClient_TransportFailureNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // unreachable on purpose

	client := NewClient(srv.URL, time.Second, nil)
	_, err := client.Login(context.Background(), "admin@app.com", "1234")

	var gwErr *ports.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Zero(t, gwErr.Code)
	assert.Equal(t, genericFailure, gwErr.Message)
}
