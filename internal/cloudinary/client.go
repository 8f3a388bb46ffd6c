package cloudinary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/videovault/videos-ms-go/internal/port"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// uploadTransformation is the fixed policy applied to every proxied upload:
// auto-optimised quality, normalised mp4 container.
const uploadTransformation = "q_auto/f_mp4"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the media service's REST API for video upload and deletion.
type Client struct {
	cfg        *Config
	httpClient httpDoer
	baseURL    string
}

// compile-time checks: *Client must satisfy the ingest and signer ports
var (
	_ port.MediaIngester = (*Client)(nil)
	_ port.UploadSigner  = (*Client)(nil)
)

func NewClient(cfg *Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		baseURL:    defaultBaseURL,
	}
}

type uploadResponse struct {
	PublicID  string  `json:"public_id"`
	SecureURL string  `json:"secure_url"`
	Bytes     int64   `json:"bytes"`
	Duration  float64 `json:"duration"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadVideo streams the payload to the video upload endpoint and returns
// the descriptor the service assigned to the stored object. The request is
// signed over the folder, timestamp and transformation parameters.
func (c *Client) UploadVideo(ctx context.Context, r io.Reader, size int64) (port.UploadDescriptor, error) {
	log.Printf("uploading %d bytes to folder %q at the media service...", size, c.cfg.UploadFolder)

	signed := url.Values{}
	signed.Set("folder", c.cfg.UploadFolder)
	signed.Set("timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	signed.Set("transformation", uploadTransformation)
	signature := SignParams(signed, c.cfg.APISecret)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeUploadBody(mw, r, signed, c.cfg.APIKey, signature))
	}()

	endpoint := fmt.Sprintf("%s/%s/video/upload", c.baseURL, c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return port.UploadDescriptor{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return port.UploadDescriptor{}, fmt.Errorf("upload request failed: %w", err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return port.UploadDescriptor{}, apiError("upload", resp)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return port.UploadDescriptor{}, fmt.Errorf("could not decode upload response: %w", err)
	}

	return port.UploadDescriptor{
		PublicID:  out.PublicID,
		SecureURL: out.SecureURL,
		Bytes:     out.Bytes,
		Duration:  out.Duration,
	}, nil
}

// DestroyVideo deletes the stored object identified by publicID. The service
// reporting "not found" counts as success so a dangling record stays
// deletable after the object already disappeared upstream.
func (c *Client) DestroyVideo(ctx context.Context, publicID string) error {
	log.Printf("destroying object %q at the media service...", publicID)

	signed := url.Values{}
	signed.Set("public_id", publicID)
	signed.Set("timestamp", strconv.FormatInt(time.Now().Unix(), 10))

	form := url.Values{}
	for k, vs := range signed {
		form[k] = vs
	}
	form.Set("api_key", c.cfg.APIKey)
	form.Set("signature", SignParams(signed, c.cfg.APISecret))

	endpoint := fmt.Sprintf("%s/%s/video/destroy", c.baseURL, c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("destroy request failed: %w", err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError("destroy", resp)
	}

	var out destroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("could not decode destroy response: %w", err)
	}
	if out.Result != "ok" && out.Result != "not found" {
		return fmt.Errorf("destroy of object %q rejected: %q", publicID, out.Result)
	}
	if out.Result == "not found" {
		log.Printf("object %q already gone at the media service", publicID)
	}

	return nil
}

// SignUploadParams signs the given upload parameters with the account secret.
func (c *Client) SignUploadParams(params url.Values) string {
	return SignParams(params, c.cfg.APISecret)
}

func writeUploadBody(mw *multipart.Writer, file io.Reader, signed url.Values, apiKey, signature string) error {
	for k := range signed {
		if err := mw.WriteField(k, signed.Get(k)); err != nil {
			return err
		}
	}
	if err := mw.WriteField("api_key", apiKey); err != nil {
		return err
	}
	if err := mw.WriteField("signature", signature); err != nil {
		return err
	}

	fw, err := mw.CreateFormFile("file", "video")
	if err != nil {
		return err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return err
	}
	return mw.Close()
}

func apiError(op string, resp *http.Response) error {
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("%s failed with status %d: %s", op, resp.StatusCode, body.Error.Message)
	}
	return fmt.Errorf("%s failed with status %d", op, resp.StatusCode)
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		log.Printf("failed to close response body: %v", err)
	}
}
