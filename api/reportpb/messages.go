// Package reportpb holds the report wire types shared by the bot and the reporter.
// Messages travel as protobuf encoded google.protobuf.Struct values.
package reportpb

import (
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldChatID = "chat_id"
	fieldPeriod = "period"
	fieldText   = "text"
	fieldError  = "error"

	fieldGeneration = "generation"
)

// ReportRequest is published to kafka when a chat asks for a report that is not cached.
// Generation is the cache write counter of Period seen when the request was made.
type ReportRequest struct {
	ChatID     int64
	Period     string
	Generation uint64
}

func (r *ReportRequest) GetChatID() int64 {
	if r == nil {
		return 0
	}
	return r.ChatID
}

func (r *ReportRequest) GetPeriod() string {
	if r == nil {
		return ""
	}
	return r.Period
}

func (r *ReportRequest) GetGeneration() uint64 {
	if r == nil {
		return 0
	}
	return r.Generation
}

func (r *ReportRequest) Marshal() ([]byte, error) {
	if r == nil {
		return nil, errors.New("encode report request: nil request")
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		fieldChatID:     strconv.FormatInt(r.ChatID, 10),
		fieldPeriod:     r.Period,
		fieldGeneration: strconv.FormatUint(r.Generation, 10),
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode report request")
	}
	return proto.Marshal(s)
}

func UnmarshalRequest(data []byte) (*ReportRequest, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode report request")
	}
	chatID, err := chatIDOf(&s)
	if err != nil {
		return nil, errors.Wrap(err, "decode report request")
	}
	gen, err := generationOf(&s)
	if err != nil {
		return nil, errors.Wrap(err, "decode report request")
	}
	return &ReportRequest{
		ChatID:     chatID,
		Period:     stringOf(&s, fieldPeriod),
		Generation: gen,
	}, nil
}

// ReportResult is delivered over gRPC. Error is set when the report could not be built.
// Generation is copied from the request the result answers.
type ReportResult struct {
	ChatID     int64
	Period     string
	Text       string
	Error      string
	Generation uint64
}

func (r *ReportResult) GetChatID() int64 {
	if r == nil {
		return 0
	}
	return r.ChatID
}

func (r *ReportResult) GetPeriod() string {
	if r == nil {
		return ""
	}
	return r.Period
}

func (r *ReportResult) GetText() string {
	if r == nil {
		return ""
	}
	return r.Text
}

func (r *ReportResult) GetError() string {
	if r == nil {
		return ""
	}
	return r.Error
}

func (r *ReportResult) GetGeneration() uint64 {
	if r == nil {
		return 0
	}
	return r.Generation
}

func (r *ReportResult) Success() bool {
	return r != nil && r.Error == ""
}

func (r *ReportResult) toStruct() (*structpb.Struct, error) {
	if r == nil {
		return nil, errors.New("encode report result: nil result")
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		fieldChatID:     strconv.FormatInt(r.ChatID, 10),
		fieldPeriod:     r.Period,
		fieldText:       r.Text,
		fieldError:      r.Error,
		fieldGeneration: strconv.FormatUint(r.Generation, 10),
	})
	return s, errors.Wrap(err, "encode report result")
}

func resultFromStruct(s *structpb.Struct) (*ReportResult, error) {
	chatID, err := chatIDOf(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode report result")
	}
	gen, err := generationOf(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode report result")
	}
	return &ReportResult{
		ChatID:     chatID,
		Period:     stringOf(s, fieldPeriod),
		Text:       stringOf(s, fieldText),
		Error:      stringOf(s, fieldError),
		Generation: gen,
	}, nil
}

func chatIDOf(s *structpb.Struct) (int64, error) {
	raw := stringOf(s, fieldChatID)
	if raw == "" {
		return 0, errors.New("chat id is missing")
	}
	return strconv.ParseInt(raw, 10, 64)
}

// generationOf treats a missing generation as 0.
func generationOf(s *structpb.Struct) (uint64, error) {
	raw := stringOf(s, fieldGeneration)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

func stringOf(s *structpb.Struct, field string) string {
	return s.GetFields()[field].GetStringValue()
}
