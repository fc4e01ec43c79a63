package evaluator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"minichess/game"
)

type predictRequest struct {
	Observation []float32 `json:"observation"`
}

type predictResponse struct {
	Policy []float64 `json:"policy"`
	Value  float64   `json:"value"`
}

// Client queries a remote model server (typically the process hosting the
// trained network) for position evaluations.
type Client struct {
	serverURL string
	client    *http.Client
}

// NewClient initializes and returns a new evaluator Client.
func NewClient(serverURL string, timeout time.Duration) *Client {
	return &Client{
		serverURL: serverURL,
		client:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Predict(obs []float32) ([]float64, float64, error) {
	data, err := json.Marshal(predictRequest{Observation: obs})
	if err != nil {
		return nil, 0, fmt.Errorf("encoding observation: %w", err)
	}

	resp, err := c.client.Post(c.serverURL+"/predict", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, 0, fmt.Errorf("querying evaluator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("evaluator returned status %d", resp.StatusCode)
	}

	var prediction predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, 0, fmt.Errorf("decoding prediction: %w", err)
	}
	return prediction.Policy, prediction.Value, nil
}

var _ game.Evaluator = (*Client)(nil)
