package gameroom

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/henri123lemoine/monaco/internal/debug"
)

const day = 24 * time.Hour

// UnknownPlayer names players missing from the users collection.
const UnknownPlayer = "Unknown"

// ErrUnknownEvent is returned when Options.Event names no event.
var ErrUnknownEvent = errors.New("unknown event")

// MonthValue is one point of a monthly series. Month is "2006-01".
type MonthValue struct {
	Month string
	Value int64
}

// Growth holds the monthly series, each sorted by month. Only months with
// records appear.
type Growth struct {
	Matches      []MonthValue
	TicketAmount []MonthValue
	Users        []MonthValue
}

// GameTotal is the ticket amount awarded by one game.
type GameTotal struct {
	GameID ID
	Game   string
	Amount int64
}

// GameMonthTable is the ticket amount per month and game. Each row's
// Amounts line up with GameIDs.
type GameMonthTable struct {
	GameIDs []ID
	Rows    []GameMonthRow
}

type GameMonthRow struct {
	Month   string
	Amounts []int64
}

// WindowKind tells event rows from the gaps between events.
type WindowKind int

const (
	WindowEvent WindowKind = iota
	WindowInterval
	WindowIntervals
)

// EventSummary counts matches and tickets inside one window.
type EventSummary struct {
	Name          string
	Kind          WindowKind
	Start         time.Time
	End           time.Time
	Matches       int
	Tickets       int64
	MatchesPerDay float64
}

// OrderSummary counts paid orders inside one window.
type OrderSummary struct {
	Name   string
	Kind   WindowKind
	Start  time.Time
	End    time.Time
	Orders int
	Amount float64
}

// OrderValueCount is how many paid orders of one value an event saw.
type OrderValueCount struct {
	Event string
	Value float64
	Count int
}

// PlayerMatches is a player's match count.
type PlayerMatches struct {
	UserID   ID
	Nickname string
	Matches  int
}

// PlayerDay is a player's match count for one game on one day.
type PlayerDay struct {
	UserID   ID
	Nickname string
	GameID   ID
	Game     string
	Date     string
	Matches  int
}

// EventPlayers lists the daily activity of an event's top players.
type EventPlayers struct {
	Event   string
	Start   time.Time
	End     time.Time
	Players []PlayerDay
}

// Options selects the optional parts of a Report. A limit of zero or less
// keeps every player.
type Options struct {
	TopUsers      int
	Event         string
	EventTopUsers int
}

// Report is everything the analytics view shows.
type Report struct {
	Growth      Growth
	GameTotals  []GameTotal
	GameMonths  GameMonthTable
	Events      []EventSummary
	Orders      []OrderSummary
	OrderValues []OrderValueCount
	HeavyUsers  []PlayerMatches
	Event       *EventPlayers
}

// Analyze builds the Report for d.
func Analyze(d *Data, opts Options) (Report, error) {
	defer debug.Timed("analyze gameroom data")()

	r := Report{
		Growth:      AnalyzeGrowth(d),
		GameTotals:  TicketsByGame(d),
		GameMonths:  TicketsByGameAndMonth(d),
		Events:      EventSummaries(d),
		Orders:      OrdersByEvent(d),
		OrderValues: OrderValuesByEvent(d),
		HeavyUsers:  TopHeavyUsers(d, opts.TopUsers),
	}

	if opts.Event != "" {
		i := slices.IndexFunc(d.Events, func(e Event) bool { return e.Title == opts.Event })
		if i < 0 {
			return Report{}, fmt.Errorf("%w: %q", ErrUnknownEvent, opts.Event)
		}
		e := d.Events[i]
		r.Event = &EventPlayers{
			Event:   e.Title,
			Start:   e.StartDate.Time,
			End:     e.EndDate.Time,
			Players: TopPlayersBetween(d, e.StartDate.Time, e.EndDate.Time, opts.EventTopUsers),
		}
	}
	return r, nil
}

// AnalyzeGrowth counts matches, ticket amount and new users per month.
func AnalyzeGrowth(d *Data) Growth {
	matches, tickets, users := monthly{}, monthly{}, monthly{}
	for _, m := range d.Matches {
		matches.add(m.CreatedAt.Time, 1)
	}
	for _, t := range d.Tickets {
		tickets.add(t.CreatedAt.Time, int64(t.Amount))
	}
	for _, u := range d.Users {
		users.add(u.CreatedAt.Time, 1)
	}
	return Growth{
		Matches:      matches.series(),
		TicketAmount: tickets.series(),
		Users:        users.series(),
	}
}

// TicketsByGame sums ticket amounts per game, ordered by game id.
func TicketsByGame(d *Data) []GameTotal {
	sums := map[ID]int64{}
	for _, t := range d.Tickets {
		if t.GameID == "" {
			continue
		}
		sums[t.GameID] += int64(t.Amount)
	}

	out := make([]GameTotal, 0, len(sums))
	for _, id := range slices.Sorted(maps.Keys(sums)) {
		out = append(out, GameTotal{GameID: id, Game: GameName(id), Amount: sums[id]})
	}
	return out
}

// TicketsByGameAndMonth sums ticket amounts per month and game. Missing
// cells are zero.
func TicketsByGameAndMonth(d *Data) GameMonthTable {
	cells := map[string]map[ID]int64{}
	games := map[ID]bool{}
	for _, t := range d.Tickets {
		if t.GameID == "" || t.CreatedAt.IsZero() {
			continue
		}
		month := monthKey(t.CreatedAt.Time)
		if cells[month] == nil {
			cells[month] = map[ID]int64{}
		}
		cells[month][t.GameID] += int64(t.Amount)
		games[t.GameID] = true
	}

	table := GameMonthTable{GameIDs: slices.Sorted(maps.Keys(games))}
	for _, month := range slices.Sorted(maps.Keys(cells)) {
		row := GameMonthRow{Month: month, Amounts: make([]int64, len(table.GameIDs))}
		for i, id := range table.GameIDs {
			row.Amounts[i] = cells[month][id]
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// EventSummaries counts matches and tickets during each event, then during
// each gap between consecutive events, then across all gaps together. The
// combined row is left out when the gaps saw no activity.
func EventSummaries(d *Data) []EventSummary {
	events, gaps := eventWindows(d.Events)

	var out []EventSummary
	for _, w := range events {
		out = append(out, summarizeMatches(d, w))
	}

	total := EventSummary{Name: "All intervals", Kind: WindowIntervals}
	totalDays := 0
	for _, w := range gaps {
		s := summarizeMatches(d, w)
		out = append(out, s)
		total.Matches += s.Matches
		total.Tickets += s.Tickets
		totalDays += floorDays(dateOf(w.end).Sub(dateOf(w.start))) + 1
	}
	if total.Matches > 0 || total.Tickets > 0 {
		total.Start, total.End = endDateSpan(d.Events)
		total.MatchesPerDay = perDay(total.Matches, totalDays)
		out = append(out, total)
	}
	return out
}

// OrdersByEvent counts paid orders the same way EventSummaries counts
// matches.
func OrdersByEvent(d *Data) []OrderSummary {
	paid := paidOrders(d.Orders)
	events, gaps := eventWindows(d.Events)

	var out []OrderSummary
	for _, w := range events {
		out = append(out, summarizeOrders(paid, w))
	}

	total := OrderSummary{Name: "All intervals", Kind: WindowIntervals}
	for _, w := range gaps {
		s := summarizeOrders(paid, w)
		out = append(out, s)
		total.Orders += s.Orders
		total.Amount += s.Amount
	}
	if total.Orders > 0 || total.Amount > 0 {
		total.Start, total.End = endDateSpan(d.Events)
		total.Amount = round2(total.Amount)
		out = append(out, total)
	}
	return out
}

// OrderValuesByEvent counts paid orders per distinct value within each
// event, most frequent first.
func OrderValuesByEvent(d *Data) []OrderValueCount {
	paid := paidOrders(d.Orders)
	events, _ := eventWindows(d.Events)

	var out []OrderValueCount
	for _, w := range events {
		counts := map[float64]int{}
		for _, o := range paid {
			v := float64(o.TotalAmount)
			if math.IsNaN(v) || !w.contains(o.CreatedAt.Time) {
				continue
			}
			counts[v]++
		}

		values := slices.Collect(maps.Keys(counts))
		slices.SortFunc(values, func(a, b float64) int {
			return cmp.Or(cmp.Compare(counts[b], counts[a]), cmp.Compare(a, b))
		})
		for _, v := range values {
			out = append(out, OrderValueCount{Event: w.name, Value: v, Count: counts[v]})
		}
	}
	return out
}

// TopHeavyUsers returns the n players with the most matches, most first.
// Ties go to the lower user id.
func TopHeavyUsers(d *Data, n int) []PlayerMatches {
	counts := map[ID]int{}
	for _, m := range d.Matches {
		if m.UserID != "" {
			counts[m.UserID]++
		}
	}

	names := nicknameIndex(d.Users)
	out := make([]PlayerMatches, 0, len(counts))
	for id, c := range counts {
		out = append(out, PlayerMatches{UserID: id, Nickname: names.lookup(id), Matches: c})
	}
	slices.SortFunc(out, func(a, b PlayerMatches) int {
		return cmp.Or(cmp.Compare(b.Matches, a.Matches), cmp.Compare(a.UserID, b.UserID))
	})
	return limit(out, n)
}

// TopPlayersBetween picks the n players with the most matches in
// [start, end] and breaks their matches down by game and day. Rows follow
// player rank, then game id, then date.
func TopPlayersBetween(d *Data, start, end time.Time, n int) []PlayerDay {
	type key struct {
		user ID
		game ID
		date string
	}

	w := window{start: start, end: end}
	totals := map[ID]int{}
	daily := map[key]int{}
	for _, m := range d.Matches {
		if m.UserID == "" || !w.contains(m.CreatedAt.Time) {
			continue
		}
		totals[m.UserID]++
		daily[key{m.UserID, m.GameID, m.CreatedAt.UTC().Format(time.DateOnly)}]++
	}

	ranked := slices.Collect(maps.Keys(totals))
	slices.SortFunc(ranked, func(a, b ID) int {
		return cmp.Or(cmp.Compare(totals[b], totals[a]), cmp.Compare(a, b))
	})
	ranked = limit(ranked, n)
	rank := make(map[ID]int, len(ranked))
	for i, id := range ranked {
		rank[id] = i
	}

	names := nicknameIndex(d.Users)
	var out []PlayerDay
	for k, c := range daily {
		if _, ok := rank[k.user]; !ok {
			continue
		}
		out = append(out, PlayerDay{
			UserID:   k.user,
			Nickname: names.lookup(k.user),
			GameID:   k.game,
			Game:     GameName(k.game),
			Date:     k.date,
			Matches:  c,
		})
	}
	slices.SortFunc(out, func(a, b PlayerDay) int {
		return cmp.Or(
			cmp.Compare(rank[a.UserID], rank[b.UserID]),
			cmp.Compare(a.GameID, b.GameID),
			cmp.Compare(a.Date, b.Date),
		)
	})
	return out
}

// window is an inclusive time range.
type window struct {
	name  string
	kind  WindowKind
	start time.Time
	end   time.Time
}

func (w window) contains(t time.Time) bool {
	return !t.IsZero() && !t.Before(w.start) && !t.After(w.end)
}

func (w window) days() int {
	return floorDays(w.end.Sub(w.start)) + 1
}

// eventWindows returns one window per event and one per gap between
// consecutive events, in collection order. A gap runs from the day after an
// event ends to the day before the next one starts.
func eventWindows(events []Event) (windows, gaps []window) {
	for _, e := range events {
		windows = append(windows, window{name: e.Title, kind: WindowEvent, start: e.StartDate.Time, end: e.EndDate.Time})
	}
	for i := 0; i+1 < len(events); i++ {
		gaps = append(gaps, window{
			name:  fmt.Sprintf("Interval %d", i+1),
			kind:  WindowInterval,
			start: events[i].EndDate.Add(day),
			end:   events[i+1].StartDate.Add(-day),
		})
	}
	return windows, gaps
}

func summarizeMatches(d *Data, w window) EventSummary {
	s := EventSummary{Name: w.name, Kind: w.kind, Start: w.start, End: w.end}
	for _, m := range d.Matches {
		if w.contains(m.CreatedAt.Time) {
			s.Matches++
		}
	}
	for _, t := range d.Tickets {
		if w.contains(t.CreatedAt.Time) {
			s.Tickets += int64(t.Amount)
		}
	}
	s.MatchesPerDay = perDay(s.Matches, w.days())
	return s
}

func summarizeOrders(paid []Order, w window) OrderSummary {
	s := OrderSummary{Name: w.name, Kind: w.kind, Start: w.start, End: w.end}
	for _, o := range paid {
		if w.contains(o.CreatedAt.Time) {
			s.Orders++
			s.Amount += float64(o.TotalAmount)
		}
	}
	s.Amount = round2(s.Amount)
	return s
}

func paidOrders(orders []Order) []Order {
	var paid []Order
	for _, o := range orders {
		if o.PaymentStatus == PaidStatus {
			paid = append(paid, o)
		}
	}
	return paid
}

// endDateSpan returns the earliest and latest event end dates.
func endDateSpan(events []Event) (time.Time, time.Time) {
	var first, last time.Time
	for i, e := range events {
		end := e.EndDate.Time
		if i == 0 || end.Before(first) {
			first = end
		}
		if i == 0 || end.After(last) {
			last = end
		}
	}
	return dateOf(first), dateOf(last)
}

type monthly map[string]int64

func (m monthly) add(t time.Time, v int64) {
	if t.IsZero() {
		return
	}
	m[monthKey(t)] += v
}

func (m monthly) series() []MonthValue {
	out := make([]MonthValue, 0, len(m))
	for _, month := range slices.Sorted(maps.Keys(m)) {
		out = append(out, MonthValue{Month: month, Value: m[month]})
	}
	return out
}

type nicknames map[ID]string

// nicknameIndex maps user ids to nicknames. The first user with an id wins.
func nicknameIndex(users []User) nicknames {
	n := make(nicknames, len(users))
	for _, u := range users {
		if _, ok := n[u.ID]; !ok {
			n[u.ID] = u.Nickname
		}
	}
	return n
}

func (n nicknames) lookup(id ID) string {
	if name := n[id]; name != "" {
		return name
	}
	return UnknownPlayer
}

func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// floorDays is the number of whole days in d, rounded down.
func floorDays(d time.Duration) int {
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}

func perDay(n, days int) float64 {
	if days <= 0 {
		return 0
	}
	return round2(float64(n) / float64(days))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func limit[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
