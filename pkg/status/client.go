// Package status queries the local sequencer RPC endpoint for the proven
// chain tip and its archive sibling-path proof.
package status

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aztecnode/provisioner/pkg/errors"
)

// DefaultEndpoint is the node's local JSON-RPC listener.
const DefaultEndpoint = "http://localhost:8080"

// Client is a minimal JSON-RPC 2.0 client for the node endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint; "" uses the default.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call issues one JSON-RPC POST. An empty or literal-null result is a
// QueryError; the menu loop treats those as recoverable.
func (c *Client) call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	payload, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return nil, errors.NewQueryError(method, "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.NewQueryError(method, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewQueryError(method, "rpc request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewQueryError(method, fmt.Sprintf("unexpected status %s", resp.Status), nil)
	}

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.NewQueryError(method, "failed to parse response", err)
	}
	if decoded.Error != nil {
		return nil, errors.NewQueryError(method, fmt.Sprintf("rpc error %d: %s", decoded.Error.Code, decoded.Error.Message), nil)
	}
	if len(decoded.Result) == 0 || string(decoded.Result) == "null" {
		return nil, errors.NewQueryError(method, "node returned no result", errors.ErrNullResult)
	}

	return decoded.Result, nil
}

// ProvenTip fetches the proven chain tip height via node_getL2Tips.
// The height is returned as the node printed it.
func (c *Client) ProvenTip(ctx context.Context) (string, error) {
	const method = "node_getL2Tips"

	result, err := c.call(ctx, method, nil)
	if err != nil {
		return "", err
	}

	var tips struct {
		Proven struct {
			Number json.Number `json:"number"`
		} `json:"proven"`
	}
	if err := json.Unmarshal(result, &tips); err != nil {
		return "", errors.NewQueryError(method, "failed to parse tips", err)
	}
	if tips.Proven.Number.String() == "" {
		return "", errors.NewQueryError(method, "no proven tip in response", errors.ErrNullResult)
	}

	return tips.Proven.Number.String(), nil
}

// ArchiveSiblingPath fetches the Merkle sibling path proving the block at
// the given height via node_getArchiveSiblingPath.
func (c *Client) ArchiveSiblingPath(ctx context.Context, blockNumber string) (json.RawMessage, error) {
	const method = "node_getArchiveSiblingPath"

	var param interface{} = blockNumber
	if n, err := strconv.ParseUint(blockNumber, 10, 64); err == nil {
		param = n
	}

	result, err := c.call(ctx, method, []interface{}{param, param})
	if err != nil {
		return nil, err
	}
	return result, nil
}
