package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/shenikar/traffic_overlay/internal/service"
)

const reportsServiceName = "reports service"

// ReportRepository работает с внешним сервисом сообщений о происшествиях
type ReportRepository struct {
	baseURL    string
	httpClient *http.Client
}

func NewReportRepository(baseURL string, httpClient *http.Client) service.ReportRepository {
	return &ReportRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListReports возвращает все сообщения
func (r *ReportRepository) ListReports(ctx context.Context) ([]models.IncidentReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/reports", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reports request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(reportsServiceName, resp); err != nil {
		return nil, err
	}

	reports := make([]models.IncidentReport, 0)
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}

// SubmitReport отправляет новое сообщение и возвращает ответ сервиса
func (r *ReportRepository) SubmitReport(ctx context.Context, report models.IncidentReport) (string, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/report", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit report: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(reportsServiceName, resp); err != nil {
		return "", err
	}

	var answer struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return "", fmt.Errorf("failed to decode submit response: %w", err)
	}
	return answer.Message, nil
}
