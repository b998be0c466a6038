package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pdroute/pdp"
)

// Sentinel errors for instance parsing.
var (
	// ErrBadHeader indicates a missing or malformed header count
	// (node / vehicle / call count sections).
	ErrBadHeader = errors.New("instance: missing or malformed header count")

	// ErrBadRecord indicates a malformed or out-of-range data record.
	ErrBadRecord = errors.New("instance: malformed record")
)

// Problem is a fully built PDPTW instance: vehicles and calls in
// ascending index order, sharing one immutable call registry.
type Problem struct {
	NodeCount int
	Vehicles  []*pdp.Vehicle
	Calls     []*pdp.Call
}

// sectionCount is the number of sections the format defines; rows past
// the last known section are ignored.
const sectionCount = 8

// Load reads and parses the problem file at path.
//
// Errors: a wrapped I/O error when the file is missing or unreadable;
// otherwise whatever Parse returns.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an instance from r and builds the problem. Header counts
// are validated before any Vehicle or Call object is constructed.
//
// Errors: ErrBadHeader, ErrBadRecord (wrapped with row context), and
// pdp validation errors for malformed windows.
func Parse(r io.Reader) (*Problem, error) {
	rows, err := scanSections(r)
	if err != nil {
		return nil, err
	}

	nodes, err := header(rows, 0)
	if err != nil {
		return nil, err
	}
	nVehicles, err := header(rows, 1)
	if err != nil {
		return nil, err
	}
	nCalls, err := header(rows, 3)
	if err != nil {
		return nil, err
	}

	b := builder{nodes: nodes, nVehicles: nVehicles, nCalls: nCalls}
	if err = b.vehicleSpecs(rows[2]); err != nil {
		return nil, err
	}
	if err = b.compatibility(rows[4]); err != nil {
		return nil, err
	}
	if err = b.calls(rows[5]); err != nil {
		return nil, err
	}
	if err = b.travel(rows[6]); err != nil {
		return nil, err
	}
	if err = b.service(rows[7]); err != nil {
		return nil, err
	}

	return b.build()
}

// scanSections splits the input into integer rows per section. `%` and
// blank lines advance the section index, which starts at -1 so the first
// separator opens section 0.
func scanSections(r io.Reader) ([sectionCount][][]int, error) {
	var rows [sectionCount][][]int

	var (
		scanner = bufio.NewScanner(r)
		section = -1
		lineNo  = 0
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			section++

			continue
		}
		if section < 0 {
			return rows, fmt.Errorf("instance: line %d precedes the first section: %w", lineNo, ErrBadRecord)
		}
		if section >= sectionCount {
			continue
		}

		fields := strings.Split(line, ",")
		vals := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				if section == 0 || section == 1 || section == 3 {
					return rows, fmt.Errorf("instance: line %d: %w", lineNo, ErrBadHeader)
				}

				return rows, fmt.Errorf("instance: line %d: %w", lineNo, ErrBadRecord)
			}
			vals[i] = v
		}
		rows[section] = append(rows[section], vals)
	}
	if err := scanner.Err(); err != nil {
		return rows, fmt.Errorf("instance: read: %w", err)
	}

	return rows, nil
}

// header extracts the single non-negative integer of a count section.
func header(rows [sectionCount][][]int, section int) (int, error) {
	if len(rows[section]) != 1 || len(rows[section][0]) != 1 || rows[section][0][0] < 0 {
		return 0, fmt.Errorf("instance: section %d: %w", section, ErrBadHeader)
	}

	return rows[section][0][0], nil
}

// builder accumulates raw per-vehicle and per-call data before the model
// objects are constructed.
type builder struct {
	nodes     int
	nVehicles int
	nCalls    int

	startNode []int
	startTime []float64
	capacity  []float64
	compat    [][]bool // [vehicle][call]

	callRows [][]int // validated section-5 rows, by call index

	travelTime  [][][]float64  // [vehicle][from][to]
	travelCost  [][][]float64
	serviceTime [][][2]float64 // [vehicle][call][role]
	serviceCost [][][2]float64
}

func (b *builder) vehicleSpecs(rows [][]int) error {
	if len(rows) != b.nVehicles {
		return fmt.Errorf("instance: section 2: want %d vehicles, got %d: %w", b.nVehicles, len(rows), ErrBadRecord)
	}

	b.startNode = make([]int, b.nVehicles)
	b.startTime = make([]float64, b.nVehicles)
	b.capacity = make([]float64, b.nVehicles)
	b.compat = make([][]bool, b.nVehicles)
	seen := make([]bool, b.nVehicles)

	for _, row := range rows {
		if len(row) != 4 {
			return fmt.Errorf("instance: section 2: %w", ErrBadRecord)
		}
		vi := row[0] - 1
		node := row[1] - 1
		if vi < 0 || vi >= b.nVehicles || seen[vi] || node < 0 || node >= b.nodes {
			return fmt.Errorf("instance: section 2: vehicle %d: %w", row[0], ErrBadRecord)
		}
		seen[vi] = true
		b.startNode[vi] = node
		b.startTime[vi] = float64(row[2])
		b.capacity[vi] = float64(row[3])
		b.compat[vi] = make([]bool, b.nCalls)
	}

	return nil
}

func (b *builder) compatibility(rows [][]int) error {
	for _, row := range rows {
		if len(row) < 1 {
			return fmt.Errorf("instance: section 4: %w", ErrBadRecord)
		}
		vi := row[0] - 1
		if vi < 0 || vi >= b.nVehicles {
			return fmt.Errorf("instance: section 4: vehicle %d: %w", row[0], ErrBadRecord)
		}
		for _, id := range row[1:] {
			ci := id - 1
			if ci < 0 || ci >= b.nCalls {
				return fmt.Errorf("instance: section 4: call %d: %w", id, ErrBadRecord)
			}
			b.compat[vi][ci] = true
		}
	}

	return nil
}

func (b *builder) calls(rows [][]int) error {
	if len(rows) != b.nCalls {
		return fmt.Errorf("instance: section 5: want %d calls, got %d: %w", b.nCalls, len(rows), ErrBadRecord)
	}

	b.callRows = make([][]int, b.nCalls)
	for _, row := range rows {
		if len(row) != 9 {
			return fmt.Errorf("instance: section 5: %w", ErrBadRecord)
		}
		ci := row[0] - 1
		pNode := row[1] - 1
		dNode := row[2] - 1
		if ci < 0 || ci >= b.nCalls || b.callRows[ci] != nil ||
			pNode < 0 || pNode >= b.nodes || dNode < 0 || dNode >= b.nodes {
			return fmt.Errorf("instance: section 5: call %d: %w", row[0], ErrBadRecord)
		}
		b.callRows[ci] = row
	}

	return nil
}

func (b *builder) travel(rows [][]int) error {
	b.travelTime = make([][][]float64, b.nVehicles)
	b.travelCost = make([][][]float64, b.nVehicles)
	for vi := 0; vi < b.nVehicles; vi++ {
		b.travelTime[vi] = squareMatrix(b.nodes)
		b.travelCost[vi] = squareMatrix(b.nodes)
	}

	for _, row := range rows {
		if len(row) != 5 {
			return fmt.Errorf("instance: section 6: %w", ErrBadRecord)
		}
		vi, from, to := row[0]-1, row[1]-1, row[2]-1
		if vi < 0 || vi >= b.nVehicles || from < 0 || from >= b.nodes || to < 0 || to >= b.nodes {
			return fmt.Errorf("instance: section 6: vehicle %d (%d->%d): %w", row[0], row[1], row[2], ErrBadRecord)
		}
		b.travelTime[vi][from][to] = float64(row[3])
		b.travelCost[vi][from][to] = float64(row[4])
	}

	return nil
}

func (b *builder) service(rows [][]int) error {
	b.serviceTime = make([][][2]float64, b.nVehicles)
	b.serviceCost = make([][][2]float64, b.nVehicles)
	for vi := 0; vi < b.nVehicles; vi++ {
		b.serviceTime[vi] = make([][2]float64, b.nCalls)
		b.serviceCost[vi] = make([][2]float64, b.nCalls)
	}

	for _, row := range rows {
		if len(row) != 6 {
			return fmt.Errorf("instance: section 7: %w", ErrBadRecord)
		}
		vi, ci := row[0]-1, row[1]-1
		if vi < 0 || vi >= b.nVehicles || ci < 0 || ci >= b.nCalls {
			return fmt.Errorf("instance: section 7: vehicle %d call %d: %w", row[0], row[1], ErrBadRecord)
		}
		b.serviceTime[vi][ci] = [2]float64{float64(row[2]), float64(row[4])}
		b.serviceCost[vi][ci] = [2]float64{float64(row[3]), float64(row[5])}
	}

	return nil
}

// build constructs the immutable model: calls first, then vehicles over
// the shared registry.
func (b *builder) build() (*Problem, error) {
	calls := make([]*pdp.Call, b.nCalls)
	for ci, row := range b.callRows {
		pickup, err := pdp.NewPickup(row[1]-1, float64(row[5]), float64(row[6]))
		if err != nil {
			return nil, fmt.Errorf("instance: call %d pickup: %w", ci, err)
		}
		delivery, err := pdp.NewDelivery(row[2]-1, float64(row[7]), float64(row[8]))
		if err != nil {
			return nil, fmt.Errorf("instance: call %d delivery: %w", ci, err)
		}
		call, err := pdp.NewCall(ci, float64(row[3]), float64(row[4]), pickup, delivery)
		if err != nil {
			return nil, fmt.Errorf("instance: call %d: %w", ci, err)
		}
		calls[ci] = call
	}

	vehicles := make([]*pdp.Vehicle, b.nVehicles)
	for vi := 0; vi < b.nVehicles; vi++ {
		compatible := pdp.NewCallSet()
		for ci, ok := range b.compat[vi] {
			if ok {
				compatible.Add(calls[ci])
			}
		}

		specs := pdp.VehicleSpecs{Index: vi, Capacity: b.capacity[vi], Compatible: compatible}
		costs := pdp.VehicleCosts{Travel: b.travelCost[vi], Service: b.serviceCost[vi]}
		times := pdp.VehicleTimes{Travel: b.travelTime[vi], Service: b.serviceTime[vi]}

		v, err := pdp.NewVehicle(pdp.NewState(b.startNode[vi], b.startTime[vi]), specs, costs, times)
		if err != nil {
			return nil, fmt.Errorf("instance: vehicle %d: %w", vi, err)
		}
		vehicles[vi] = v
	}

	return &Problem{NodeCount: b.nodes, Vehicles: vehicles, Calls: calls}, nil
}

// squareMatrix allocates an n×n zero matrix.
func squareMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}
