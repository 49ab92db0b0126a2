package service

import (
	"strings"

	"ironmaiden/internal/constant"
	"ironmaiden/internal/entity"
	"ironmaiden/pkg/clock"
	"ironmaiden/pkg/random"
)

type IGeneratorService interface {
	GenerateEvent() entity.Event
}

type generatorService struct {
	rnd   random.Source
	clock clock.Clock
}

func NewGeneratorService(rnd random.Source, clk clock.Clock) IGeneratorService {
	return &generatorService{
		rnd:   rnd,
		clock: clk,
	}
}

func (s *generatorService) GenerateEvent() entity.Event {
	return entity.Event{
		Imsi:      s.fakeImsi(),
		Location:  constant.Landmarks[s.rnd.Choose(len(constant.Landmarks))],
		Timestamp: s.clock.Now().Format(constant.TimestampLayout),
	}
}

func (s *generatorService) fakeImsi() string {
	var b strings.Builder
	b.Grow(constant.ImsiLength)
	for i := 0; i < constant.ImsiLength; i++ {
		b.WriteByte(byte('0' + s.rnd.NextDigit()))
	}
	return b.String()
}
