package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/history"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

type testServer struct {
	app *fiber.App
	log *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithOutput(io.Discard).
		WithLogFile(log).
		Build()
	store := history.NewFileStore(t.TempDir())
	return &testServer{app: New(cfg, NewManager(cfg, store)), log: log}
}

// do sends a request and decodes a JSON response into out when out is not nil.
func (ts *testServer) do(t *testing.T, method, path, body string, out interface{}) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func (ts *testServer) create(t *testing.T) State {
	t.Helper()
	var st State
	code := ts.do(t, http.MethodPost, "/api/games", "", &st)
	testutil.AssertEqual(t, code, fiber.StatusCreated)
	return st
}

type errorResponse struct {
	Error string `json:"error"`
	Game  *State `json:"game"`
}

func TestCreateAndGet(t *testing.T) {
	ts := newTestServer(t)
	created := ts.create(t)

	testutil.AssertEqual(t, created.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, created.ToMove, "WHITE")
	testutil.AssertEqual(t, created.Outcome, "in progress")
	testutil.AssertEqual(t, created.Board, chess.Render(chess.NewInitialBoard()))
	testutil.AssertEqual(t, created.Moves, []string{})
	testutil.AssertEqual(t, len(created.Legal), 20)
	testutil.AssertContains(t, strings.Join(created.Legal, " "), "g1f3")

	var got State
	code := ts.do(t, http.MethodGet, "/api/games/"+created.ID, "", &got)
	testutil.AssertEqual(t, code, fiber.StatusOK)
	testutil.AssertEqual(t, got, created)
}

func TestList(t *testing.T) {
	ts := newTestServer(t)
	a, b := ts.create(t), ts.create(t)

	var resp struct {
		Games []string `json:"games"`
	}
	code := ts.do(t, http.MethodGet, "/api/games", "", &resp)
	testutil.AssertEqual(t, code, fiber.StatusOK)
	testutil.AssertEqual(t, len(resp.Games), 2)
	testutil.AssertTrue(t, resp.Games[0] < resp.Games[1], "ids are sorted")
	for _, id := range []string{a.ID, b.ID} {
		testutil.AssertTrue(t, id == resp.Games[0] || id == resp.Games[1], "missing %s", id)
	}
}

func TestMoves(t *testing.T) {
	ts := newTestServer(t)
	id := ts.create(t).ID

	var st State
	code := ts.do(t, http.MethodPost, "/api/games/"+id+"/moves", `{"move":"e2e4"}`, &st)
	testutil.AssertEqual(t, code, fiber.StatusOK)
	testutil.AssertEqual(t, st.ToMove, "BLACK")
	testutil.AssertEqual(t, st.Moves, []string{"e2e4"})

	var rejected errorResponse
	code = ts.do(t, http.MethodPost, "/api/games/"+id+"/moves", `{"move":"e2e4"}`, &rejected)
	testutil.AssertEqual(t, code, fiber.StatusUnprocessableEntity)
	testutil.AssertContains(t, rejected.Error, "not a piece present")
	if rejected.Game == nil {
		t.Fatal("rejected move response should carry the game state")
	}
	testutil.AssertEqual(t, rejected.Game.Moves, []string{"e2e4"})

	code = ts.do(t, http.MethodPost, "/api/games/"+id+"/moves", `{"move":""}`, &rejected)
	testutil.AssertEqual(t, code, fiber.StatusUnprocessableEntity)

	code = ts.do(t, http.MethodPost, "/api/games/"+id+"/moves", `{"move":`, &rejected)
	testutil.AssertEqual(t, code, fiber.StatusBadRequest)
}

func TestCheckmateEndsGame(t *testing.T) {
	ts := newTestServer(t)
	id := ts.create(t).ID

	var st State
	for _, mv := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		code := ts.do(t, http.MethodPost, "/api/games/"+id+"/moves", `{"move":"`+mv+`"}`, &st)
		testutil.AssertEqual(t, code, fiber.StatusOK, mv)
	}
	testutil.AssertTrue(t, st.Check)
	testutil.AssertEqual(t, st.Outcome, "checkmate")
	testutil.AssertEqual(t, st.Winner, "BLACK")

	var rejected errorResponse
	code := ts.do(t, http.MethodPost, "/api/games/"+id+"/moves", `{"move":"a2a3"}`, &rejected)
	testutil.AssertEqual(t, code, fiber.StatusConflict)

	code = ts.do(t, http.MethodPost, "/api/games/"+id+"/reset", "", &st)
	testutil.AssertEqual(t, code, fiber.StatusOK)
	testutil.AssertEqual(t, st.Outcome, "in progress")
	testutil.AssertEqual(t, st.FEN, engine.InitialFEN)
}

func TestSaveAndLoad(t *testing.T) {
	ts := newTestServer(t)
	first := ts.create(t).ID
	second := ts.create(t).ID

	for _, mv := range []string{"d2d4", "d7d5"} {
		ts.do(t, http.MethodPost, "/api/games/"+first+"/moves", `{"move":"`+mv+`"}`, nil)
	}

	var st State
	code := ts.do(t, http.MethodPost, "/api/games/"+first+"/save", `{"name":"queens-gambit"}`, &st)
	testutil.AssertEqual(t, code, fiber.StatusOK)

	var saves struct {
		Saves []string `json:"saves"`
	}
	ts.do(t, http.MethodGet, "/api/saves", "", &saves)
	testutil.AssertEqual(t, saves.Saves, []string{"queens-gambit"})

	code = ts.do(t, http.MethodPost, "/api/games/"+second+"/load", `{"name":"queens-gambit"}`, &st)
	testutil.AssertEqual(t, code, fiber.StatusOK)
	testutil.AssertEqual(t, st.ID, second)
	testutil.AssertEqual(t, st.Moves, []string{"d2d4", "d7d5"})
	testutil.AssertEqual(t, st.ToMove, "WHITE")

	var rejected errorResponse
	code = ts.do(t, http.MethodPost, "/api/games/"+second+"/load", `{"name":"missing"}`, &rejected)
	testutil.AssertEqual(t, code, fiber.StatusNotFound)

	code = ts.do(t, http.MethodPost, "/api/games/"+second+"/save", `{"name":"../x"}`, &rejected)
	testutil.AssertEqual(t, code, fiber.StatusBadRequest)
}

func TestUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/games/nope", ""},
		{http.MethodDelete, "/api/games/nope", ""},
		{http.MethodPost, "/api/games/nope/moves", `{"move":"e2e4"}`},
		{http.MethodPost, "/api/games/nope/reset", ""},
		{http.MethodPost, "/api/games/nope/save", `{"name":"x"}`},
		{http.MethodPost, "/api/games/nope/load", `{"name":"x"}`},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			var resp errorResponse
			code := ts.do(t, p.method, p.path, p.body, &resp)
			testutil.AssertEqual(t, code, fiber.StatusNotFound)
			testutil.AssertContains(t, resp.Error, "game not found")
		})
	}
}

func TestDelete(t *testing.T) {
	ts := newTestServer(t)
	id := ts.create(t).ID

	code := ts.do(t, http.MethodDelete, "/api/games/"+id, "", nil)
	testutil.AssertEqual(t, code, fiber.StatusNoContent)

	code = ts.do(t, http.MethodGet, "/api/games/"+id, "", nil)
	testutil.AssertEqual(t, code, fiber.StatusNotFound)
}

func TestRequestLog(t *testing.T) {
	ts := newTestServer(t)
	ts.create(t)
	testutil.AssertContains(t, ts.log.String(), "201 POST /api/games")
}
