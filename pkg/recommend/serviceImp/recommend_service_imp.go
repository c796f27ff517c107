package serviceImp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"cropcast/entities"
	"cropcast/logger"
	"cropcast/pkg/ai"
	"cropcast/pkg/apperr"
	"cropcast/pkg/climate"
	fieldRepo "cropcast/pkg/field/repository"
	"cropcast/pkg/metrics"
	"cropcast/pkg/recommend"
	"cropcast/pkg/recommend/repository"
	"cropcast/pkg/recommend/service"
)

const workflow = "recommendation"

type recommendSvc struct {
	repo    repository.RecommendRepository
	fields  fieldRepo.FieldRepository
	weather climate.Oracle
	llm     ai.Client
}

func NewRecommendService(repo repository.RecommendRepository, fields fieldRepo.FieldRepository, weather climate.Oracle, llm ai.Client) service.RecommendService {
	return &recommendSvc{repo: repo, fields: fields, weather: weather, llm: llm}
}

func (s *recommendSvc) Generate(ctx context.Context, uid string, req recommend.Request) (*recommend.Response, error) {
	if uid == "" {
		return nil, apperr.ErrUnauthorized
	}
	req.FieldID = strings.TrimSpace(req.FieldID)
	req.SoilType = strings.TrimSpace(req.SoilType)
	req.Location = strings.TrimSpace(req.Location)
	if req.FieldID == "" || req.SoilType == "" {
		return nil, apperr.Invalid("Field ID and soil type are required")
	}
	if !ai.Configured(s.llm) {
		return nil, apperr.Wrap(apperr.ErrConfig, "Google AI API key not configured")
	}
	if _, err := s.fields.FindOwned(req.FieldID, uid); err != nil {
		return nil, apperr.NotFound(err)
	}

	desc, raw := s.lookupWeather(ctx, req.Location)

	text, err := s.llm.Generate(ctx, recommend.BuildPrompt(req.SoilType, req.Location, desc, req.PreviousCrops))
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, apperr.Wrap(apperr.ErrConfig, "Google AI API key not configured")
		}
		metrics.GeneratorCalls.WithLabelValues(workflow, metrics.Failed).Inc()
		logger.Error("recommendation generator failed", zap.String("field_id", req.FieldID), zap.Error(err))
		return nil, apperr.Wrap(apperr.ErrUpstream, "Google AI API error: %v", err)
	}
	metrics.GeneratorCalls.WithLabelValues(workflow, metrics.OK).Inc()

	recs, ok := recommend.Parse(text)
	if !ok {
		metrics.RecommendationFallbacks.Inc()
		logger.Warn("unusable generator reply, using fallback set", zap.String("field_id", req.FieldID), zap.Int("reply_len", len(text)))
	}

	saved := make([]recommend.Recommendation, 0, len(recs))
	for _, r := range recs {
		row := &entities.CropRecommendation{
			FieldID:               req.FieldID,
			UserID:                uid,
			CropType:              r.Crop,
			SuitabilityPercentage: r.Suitability,
			RecommendationFactors: datatypes.NewJSONType(r.Factors),
			WeatherData:           raw,
		}
		if err := s.repo.Save(row); err != nil {
			metrics.RowsDropped.WithLabelValues("crop_recommendations").Inc()
			logger.Warn("dropping unsaved recommendation", zap.String("crop", r.Crop), zap.Error(err))
			continue
		}
		saved = append(saved, r)
	}
	return &recommend.Response{Recommendations: saved}, nil
}

// lookupWeather never fails: any problem yields the placeholder description.
func (s *recommendSvc) lookupWeather(ctx context.Context, location string) (string, datatypes.JSON) {
	empty := datatypes.JSON(`{}`)
	if location == "" || s.weather == nil {
		metrics.WeatherLookups.WithLabelValues(metrics.Skipped).Inc()
		return climate.Placeholder, empty
	}
	r, err := s.weather.Current(ctx, location)
	if err != nil {
		metrics.WeatherLookups.WithLabelValues(metrics.Failed).Inc()
		logger.Warn("weather lookup failed", zap.String("location", location), zap.Error(err))
		return climate.Placeholder, empty
	}
	metrics.WeatherLookups.WithLabelValues(metrics.OK).Inc()
	raw := empty
	if len(r.Raw) > 0 {
		raw = datatypes.JSON(r.Raw)
	}
	return climate.Describe(r), raw
}

func (s *recommendSvc) History(fieldID, uid string) ([]entities.CropRecommendation, error) {
	if _, err := s.fields.FindOwned(fieldID, uid); err != nil {
		return nil, apperr.NotFound(err)
	}
	return s.repo.ListByField(fieldID, uid)
}
