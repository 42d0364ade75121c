// Package admissions is the REST adapter for the admissions backend.
package admissions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/infrastructure/httpclient"
	"github.com/admisiones-iti/admisiones/internal/logger"
)

const (
	programsPath   = "/api/carreras"
	structurePath  = programsPath + "/estructura-completa"
	candidatesPath = "/postulantes"
	attachPath     = "/postulante_carrera/%d"

	// maxErrorBody bounds how much of an error response ends up in messages.
	maxErrorBody = 512
)

// Client talks to the admissions backend.
type Client struct {
	baseURL string
	client  httpclient.HTTPClient
}

// NewClient creates a client rooted at baseURL, e.g. "http://localhost:8080".
func NewClient(baseURL string, client httpclient.HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// ListPrograms fetches the whole program catalog.
func (c *Client) ListPrograms(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := c.doJSON(ctx, http.MethodGet, programsPath, nil, &programs); err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []models.Program{}
	}
	return programs, nil
}

// GetProgram fetches a single program by id.
func (c *Client) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	var program models.Program
	if err := c.doJSON(ctx, http.MethodGet, programPath(id), nil, &program); err != nil {
		return nil, notFoundAsProgramError(err, id)
	}
	return &program, nil
}

// CreateProgram adds a program to the catalog and returns the stored record.
func (c *Client) CreateProgram(ctx context.Context, program models.Program) (*models.Program, error) {
	program.ID = 0
	var created models.Program
	if err := c.doJSON(ctx, http.MethodPost, programsPath, program, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateProgramWithStructure posts to the endpoint that also creates the program's
// academic structure. The backend answers with a JSON string.
func (c *Client) CreateProgramWithStructure(ctx context.Context, program models.Program) (string, error) {
	program.ID = 0
	var message string
	if err := c.doJSON(ctx, http.MethodPost, structurePath, program, &message); err != nil {
		return "", err
	}
	return message, nil
}

func (c *Client) UpdateProgram(ctx context.Context, id int64, program models.Program) (*models.Program, error) {
	program.ID = id
	var updated models.Program
	if err := c.doJSON(ctx, http.MethodPut, programPath(id), program, &updated); err != nil {
		return nil, notFoundAsProgramError(err, id)
	}
	if updated.ID == 0 {
		updated = program
	}
	return &updated, nil
}

func (c *Client) DeleteProgram(ctx context.Context, id int64) error {
	if err := c.doJSON(ctx, http.MethodDelete, programPath(id), nil, nil); err != nil {
		return notFoundAsProgramError(err, id)
	}
	return nil
}

// CreateCandidate posts the candidate and returns the backend's record. A success
// response without an id is an error: programs could not be attached to it.
func (c *Client) CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.CreatedCandidate, error) {
	var created models.CreatedCandidate
	if err := c.doJSON(ctx, http.MethodPost, candidatesPath, candidate, &created); err != nil {
		return nil, err
	}
	if created.ID == 0 {
		return nil, appErrors.ErrMissingCandidateID.WithContext("endpoint", candidatesPath)
	}
	return &created, nil
}

// AttachPrograms links all the program ids to the candidate in one bulk call.
func (c *Client) AttachPrograms(ctx context.Context, candidateID int64, programIDs []int64) error {
	endpoint := fmt.Sprintf(attachPath, candidateID)
	body := models.ProgramAttachment{ProgramIDs: programIDs}
	return c.doJSON(ctx, http.MethodPost, endpoint, body, nil)
}

// doJSON sends body as JSON (when not nil) and decodes a 2xx response into out
// (when not nil). Any other status is a NETWORK AppError carrying the status.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return appErrors.NewAppError(appErrors.TypeInternal, "error encoding request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return appErrors.ErrNetworkOrServer.WithError(fmt.Errorf("error creating request: %w", err)).
			WithContext("endpoint", endpoint)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := httpclient.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(httpclient.RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Debug(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)
		return appErrors.ErrNetworkOrServer.WithError(fmt.Errorf("error making request: %w", err)).
			WithContext("endpoint", endpoint)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug(ctx, "error closing response body", "error", err)
		}
	}()

	logger.Debug(ctx, "request done",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		detail := strings.TrimSpace(string(text))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return appErrors.ErrNetworkOrServer.
			WithError(fmt.Errorf("Error %d en %s: %s", resp.StatusCode, endpoint, detail)).
			WithContext("endpoint", endpoint).
			WithContext("status", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return appErrors.ErrNetworkOrServer.WithError(fmt.Errorf("error decoding response: %w", err)).
			WithContext("endpoint", endpoint)
	}
	return nil
}

func programPath(id int64) string {
	return fmt.Sprintf("%s/%d", programsPath, id)
}

// notFoundAsProgramError turns a 404 on a program endpoint into ErrProgramNotFound.
func notFoundAsProgramError(err error, id int64) error {
	if status, ok := statusOf(err); ok && status == http.StatusNotFound {
		return appErrors.ErrProgramNotFound.WithError(err).WithContext("program_id", id)
	}
	return err
}

func statusOf(err error) (int, bool) {
	appErr, ok := err.(*appErrors.AppError)
	if !ok {
		return 0, false
	}
	status, ok := appErr.Context["status"].(int)
	return status, ok
}
