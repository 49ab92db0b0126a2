package logger

import "github.com/ThreeDotsLabs/watermill"

// WatermillAdapter routes event bus logs into the diagnostic log.
type WatermillAdapter struct {
	logger ILogger
	fields watermill.LogFields
}

func NewWatermillAdapter(l ILogger) watermill.LoggerAdapter {
	return &WatermillAdapter{logger: l}
}

func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	details := a.merge(fields)
	if err != nil {
		details["error"] = err.Error()
	}
	a.logger.Error("EVENT_BUS", msg, details)
}

func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info("EVENT_BUS", msg, a.merge(fields))
}

func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug("EVENT_BUS", msg, a.merge(fields))
}

func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug("EVENT_BUS", msg, a.merge(fields))
}

func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{logger: a.logger, fields: a.fields.Add(fields)}
}

func (a *WatermillAdapter) merge(fields watermill.LogFields) map[string]interface{} {
	details := make(map[string]interface{}, len(a.fields)+len(fields))
	for k, v := range a.fields {
		details[k] = v
	}
	for k, v := range fields {
		details[k] = v
	}
	return details
}
