package client

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"

	"cropcast/entities"
	"cropcast/pkg/climate"
	dashboard "cropcast/pkg/dashboard/service"
	"cropcast/pkg/recommend"
	reminder "cropcast/pkg/reminder/service"
)

type LoginResult struct {
	AccessToken string           `json:"access_token"`
	User        entities.Profile `json:"user"`
}

func (c *Client) DevLogin(ctx context.Context, email, fullName string) (*LoginResult, error) {
	var out LoginResult
	in := map[string]string{"email": email, "full_name": fullName}
	if err := c.do(ctx, http.MethodPost, "/auth/token", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*entities.Profile, error) {
	var out entities.Profile
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListFarms(ctx context.Context) ([]entities.Farm, error) {
	var out []entities.Farm
	if err := c.do(ctx, http.MethodGet, "/farms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateFarm(ctx context.Context, f entities.Farm) (*entities.Farm, error) {
	var out entities.Farm
	if err := c.do(ctx, http.MethodPost, "/farms", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFarm(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/farms/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListFields(ctx context.Context, farmID string) ([]entities.Field, error) {
	var out []entities.Field
	if err := c.do(ctx, http.MethodGet, "/farms/"+url.PathEscape(farmID)+"/fields", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateField(ctx context.Context, farmID string, f entities.Field) (*entities.Field, error) {
	var out entities.Field
	if err := c.do(ctx, http.MethodPost, "/farms/"+url.PathEscape(farmID)+"/fields", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetField(ctx context.Context, id string) (*entities.Field, error) {
	var out entities.Field
	if err := c.do(ctx, http.MethodGet, "/fields/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCrops(ctx context.Context, farmID string, limit int) ([]entities.Crop, error) {
	var out []entities.Crop
	path := withQuery("/farms/"+url.PathEscape(farmID)+"/crops", "limit", itoa(limit))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCrop(ctx context.Context, farmID string, cr entities.Crop) (*entities.Crop, error) {
	var out entities.Crop
	if err := c.do(ctx, http.MethodPost, "/farms/"+url.PathEscape(farmID)+"/crops", cr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListReminders(ctx context.Context) ([]reminder.ReminderView, error) {
	var out []reminder.ReminderView
	if err := c.do(ctx, http.MethodGet, "/reminders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReminder(ctx context.Context, r entities.Reminder) (*reminder.ReminderView, error) {
	var out reminder.ReminderView
	if err := c.do(ctx, http.MethodPost, "/reminders", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetReminderCompleted(ctx context.Context, id string, done bool) (*reminder.ReminderView, error) {
	var out reminder.ReminderView
	in := reminder.ReminderPatch{IsCompleted: &done}
	if err := c.do(ctx, http.MethodPatch, "/reminders/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Recommend(ctx context.Context, req recommend.Request) ([]recommend.Recommendation, error) {
	var out recommend.Response
	if err := c.do(ctx, http.MethodPost, "/functions/v1/crop-recommendation", req, &out); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/functions/v1/cropcast-chat", map[string]string{"message": message}, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *Client) ChatHistory(ctx context.Context, limit int) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := c.do(ctx, http.MethodGet, withQuery("/chat/messages", "limit", itoa(limit)), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Weather(ctx context.Context, location string) (*climate.Snapshot, error) {
	var out climate.Snapshot
	if err := c.do(ctx, http.MethodGet, withQuery("/weather", "location", location), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context, farmID string) (*dashboard.Dashboard, error) {
	var out dashboard.Dashboard
	if err := c.do(ctx, http.MethodGet, withQuery("/dashboard", "farm_id", farmID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportFarm downloads the farm workbook and the file name the server suggests.
func (c *Client) ExportFarm(ctx context.Context, farmID string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/farms/"+url.PathEscape(farmID)+"/export", nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.send(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	name := "farm-report.xlsx"
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		name = params["filename"]
	}
	return b, name, nil
}
