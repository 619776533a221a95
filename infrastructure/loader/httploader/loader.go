package httploader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/infrastructure/loader/csvparse"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

// DefaultPath é o caminho fixo do dataset relativo à origem.
const DefaultPath = "/conjura_mmm_data.csv"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// Loader baixa o CSV de uma URL e faz o parse.
type Loader struct {
	client HTTPClient
	url    string
}

// New monta a URL do dataset a partir da origem e do caminho.
func New(client HTTPClient, baseURL, path string) *Loader {
	if path == "" {
		path = DefaultPath
	}
	return &Loader{
		client: client,
		url:    strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"),
	}
}

func (l *Loader) Source() string {
	return l.url
}

func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "httploader: build request")
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "httploader: fetch dataset")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("httploader: non-2xx: %d body=%s", resp.StatusCode, string(body))
	}

	logrus.WithFields(logrus.Fields{
		"url":            l.url,
		"content_length": resp.ContentLength,
	}).Debug("Dataset recebido, iniciando parse")

	result, err := csvparse.Parse(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "httploader: parse dataset")
	}
	result.Report(l.url)

	return result.Dataset(), nil
}
