package service

import (
	"strconv"
	"strings"

	"ironmaiden/internal/constant"
	"ironmaiden/internal/dto"
	"ironmaiden/pkg/random"
)

type IMapService interface {
	RenderMap() *dto.AsciiMap
}

type mapService struct {
	rnd random.Source
}

func NewMapService(rnd random.Source) IMapService {
	return &mapService{rnd: rnd}
}

// RenderMap places each landmark on its own row at a random column. Markers
// are index % 10, so indices 10 and 11 share digits 0 and 1.
func (s *mapService) RenderMap() *dto.AsciiMap {
	grid := make([][]byte, constant.MapRows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(constant.MapFiller), constant.MapColumns))
	}

	legend := make([]dto.LegendEntry, 0, len(constant.Landmarks))
	for idx, location := range constant.Landmarks {
		marker := strconv.Itoa(idx % 10)
		x := s.rnd.Intn(constant.MapColumns)
		grid[idx][x] = marker[0]
		legend = append(legend, dto.LegendEntry{Marker: marker, Location: location})
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}

	return &dto.AsciiMap{Rows: rows, Legend: legend}
}
