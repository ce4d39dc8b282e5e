package service

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"VCS_Status_Monitor/pkg/mail"
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const reportWindow = 24 * time.Hour

//go:generate mockgen -source=housekeeping_service.go -destination=../mocks/service/housekeeping_service_mock.go -package=mockservice

type HousekeepingService interface {
	// SendDailyReport mails per-service figures for the 24 hours before now.
	SendDailyReport(ctx context.Context, to string) error
	// PurgeExpiredResults deletes check results older than the retention period.
	PurgeExpiredResults(ctx context.Context, retentionDays int) (int64, error)
}

type serviceReport struct {
	Service           model.Service
	Uptime            float64
	AvgResponseTimeMs float64
	Incidents         int64
	TotalChecks       int64
	LastCheckedAt     *time.Time
}

type housekeepingService struct {
	serviceRepo repository.ServiceRepository
	resultRepo  repository.CheckResultRepository
	mailSender  mail.Sender
	now         func() time.Time
}

func (h *housekeepingService) SendDailyReport(ctx context.Context, to string) error {
	end := h.now()
	start := end.Add(-reportWindow)
	services, err := h.serviceRepo.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("HousekeepingService.SendDailyReport: %w", err)
	}
	latest, err := h.resultRepo.GetLatestPerService(ctx)
	if err != nil {
		return fmt.Errorf("HousekeepingService.SendDailyReport: %w", err)
	}
	lastChecked := make(map[string]time.Time, len(latest))
	for _, res := range latest {
		lastChecked[res.ServiceID] = res.CheckedAt
	}

	reports := make([]serviceReport, 0, len(services))
	for _, svc := range services {
		filter := repository.CheckResultFilter{ServiceID: svc.ID, From: start, To: end}
		counts, e := h.resultRepo.CountByStatus(ctx, filter)
		if e != nil {
			return fmt.Errorf("HousekeepingService.SendDailyReport: %w", e)
		}
		avg, e := h.resultRepo.AverageResponseTime(ctx, filter)
		if e != nil {
			return fmt.Errorf("HousekeepingService.SendDailyReport: %w", e)
		}
		report := serviceReport{
			Service:           svc,
			Uptime:            counts.Uptime(),
			AvgResponseTimeMs: model.RoundTo2(avg),
			Incidents:         counts.Outages(),
			TotalChecks:       counts.Total(),
		}
		if t, ok := lastChecked[svc.ID]; ok {
			report.LastCheckedAt = &t
		}
		reports = append(reports, report)
	}

	subject := fmt.Sprintf("Service Status Report From %s To %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	err = h.mailSender.SendMail(ctx, mail.Message{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: generateHTMLBody(reports, end),
		TextBody: generateTextMailBody(reports, end),
	})
	if err != nil {
		return fmt.Errorf("HousekeepingService.SendDailyReport: %w", err)
	}
	return nil
}

func lastCheckedText(t *time.Time, now time.Time) string {
	if t == nil {
		return "never"
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}

func generateTextMailBody(reports []serviceReport, now time.Time) string {
	var b strings.Builder
	b.WriteString("--- SUMMARY ---\n")
	fmt.Fprintf(&b, "Services: %d\n\n", len(reports))
	for _, rep := range reports {
		fmt.Fprintf(&b, "%s (%s)\n", rep.Service.Name, rep.Service.Category)
		fmt.Fprintf(&b, "  Uptime: %.2f%%\n", rep.Uptime)
		fmt.Fprintf(&b, "  Average Response Time: %sms\n", humanize.CommafWithDigits(rep.AvgResponseTimeMs, 2))
		fmt.Fprintf(&b, "  Outage Checks: %s of %s\n", humanize.Comma(rep.Incidents), humanize.Comma(rep.TotalChecks))
		fmt.Fprintf(&b, "  Last Checked: %s\n", lastCheckedText(rep.LastCheckedAt, now))
	}
	return b.String()
}

func generateHTMLBody(reports []serviceReport, now time.Time) string {
	const cell = `<td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>`
	const header = `<th style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">%s</th>`
	var b strings.Builder
	b.WriteString("\n<body>\n    <table style=\"width:100%; border-collapse: collapse;\">\n        <tr>")
	for _, h := range []string{"Service", "Category", "Uptime", "Average Response Time", "Outage Checks", "Total Checks", "Last Checked"} {
		fmt.Fprintf(&b, header, h)
	}
	b.WriteString("</tr>\n")
	for _, rep := range reports {
		b.WriteString("        <tr>")
		fmt.Fprintf(&b, cell, html.EscapeString(rep.Service.Name))
		fmt.Fprintf(&b, cell, html.EscapeString(rep.Service.Category))
		fmt.Fprintf(&b, cell, fmt.Sprintf("%.2f%%", rep.Uptime))
		fmt.Fprintf(&b, cell, humanize.CommafWithDigits(rep.AvgResponseTimeMs, 2)+"ms")
		fmt.Fprintf(&b, cell, humanize.Comma(rep.Incidents))
		fmt.Fprintf(&b, cell, humanize.Comma(rep.TotalChecks))
		fmt.Fprintf(&b, cell, lastCheckedText(rep.LastCheckedAt, now))
		b.WriteString("</tr>\n")
	}
	b.WriteString("    </table>\n</body>")
	return b.String()
}

func (h *housekeepingService) PurgeExpiredResults(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := h.now().AddDate(0, 0, -retentionDays)
	deleted, err := h.resultRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("HousekeepingService.PurgeExpiredResults: %w", err)
	}
	return deleted, nil
}

func NewHousekeepingService(serviceRepo repository.ServiceRepository, resultRepo repository.CheckResultRepository, mailSender mail.Sender) HousekeepingService {
	return &housekeepingService{
		serviceRepo: serviceRepo,
		resultRepo:  resultRepo,
		mailSender:  mailSender,
		now:         utcNow,
	}
}
