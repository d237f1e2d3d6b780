package main

import (
	"math/bits"
	"strconv"
)

// stats aggregates the integers seen by the scan command.
type stats struct {
	count       int
	errors      int
	sum         uint64
	sumOverflow bool
	min, max    uint64
}

func (s *stats) add(v uint64) {
	if s.count == 0 || v < s.min {
		s.min = v
	}
	if s.count == 0 || v > s.max {
		s.max = v
	}
	s.count++

	var carry uint64
	s.sum, carry = bits.Add64(s.sum, v, 0)
	if carry != 0 {
		s.sumOverflow = true
	}
}

func (s *stats) fail() {
	s.errors++
}

// rows renders s for printer.table.
func (s *stats) rows(p *printer) []row {
	rows := []row{{label: "count", value: strconv.Itoa(s.count)}}
	if s.count > 0 {
		sum := p.number(s.sum)
		if s.sumOverflow {
			sum = "overflow"
		}
		rows = append(rows,
			row{label: "sum", value: sum, err: s.sumOverflow},
			row{label: "min", value: p.number(s.min)},
			row{label: "max", value: p.number(s.max)},
		)
	}
	if s.errors > 0 {
		rows = append(rows, row{label: "errors", value: strconv.Itoa(s.errors), err: true})
	}
	return rows
}
