package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateImages renders one image per prompt into outputDir, named
// {prefix}_{n}.jpg. Failed prompts are logged and skipped, so the returned
// slice may be shorter than the input; the caller decides what to do with
// under-delivery.
func (c *Client) GenerateImages(ctx context.Context, prompts []string, outputDir, prefix string) []string {
	log.Printf("[gemini] Generating %d image(s) with prefix %s", len(prompts), prefix)

	var paths []string
	for i, prompt := range prompts {
		outPath := filepath.Join(outputDir, fmt.Sprintf("%s_%d.jpg", prefix, i+1))
		if err := c.generateImage(ctx, prompt, outPath); err != nil {
			log.Printf("[gemini] Image %d failed: %v", i+1, err)
			continue
		}
		paths = append(paths, outPath)
	}
	return paths
}

// GenerateCoverImages renders cover images named {prefix}_cover{n}.jpg.
func (c *Client) GenerateCoverImages(ctx context.Context, prompts []string, outputDir, prefix string) []string {
	log.Printf("[gemini] Generating %d cover image(s) with prefix %s", len(prompts), prefix)

	var paths []string
	for i, prompt := range prompts {
		outPath := filepath.Join(outputDir, fmt.Sprintf("%s_cover%d.jpg", prefix, i+1))
		if err := c.generateImage(ctx, prompt, outPath); err != nil {
			log.Printf("[gemini] Cover image %d failed: %v", i+1, err)
			continue
		}
		paths = append(paths, outPath)
	}
	return paths
}

func (c *Client) generateImage(ctx context.Context, prompt, outPath string) error {
	log.Printf("[gemini] Generating image for prompt: %q", truncate(prompt, 60))

	reqBody := predictRequest{
		Instances:  []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{SampleCount: 1, AspectRatio: "9:16"},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:predict?key=%s", c.baseURL, c.cfg.Gemini.ImageModel, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("imagen request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var predResp predictResponse
	if err := json.Unmarshal(respBytes, &predResp); err != nil {
		return fmt.Errorf("parse imagen response: %w", err)
	}
	if predResp.Error != nil {
		return fmt.Errorf("imagen error: %s", predResp.Error.Message)
	}
	if len(predResp.Predictions) == 0 {
		return fmt.Errorf("imagen returned no predictions")
	}

	imgBytes, err := base64.StdEncoding.DecodeString(predResp.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return fmt.Errorf("decode image data: %w", err)
	}
	if len(imgBytes) < 100 {
		return fmt.Errorf("image data too small (%d bytes) — likely invalid", len(imgBytes))
	}

	if err := os.WriteFile(outPath, imgBytes, 0644); err != nil {
		return fmt.Errorf("write image %s: %w", outPath, err)
	}
	log.Printf("[gemini] Image saved to %s", outPath)
	return nil
}
