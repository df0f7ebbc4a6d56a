// Package schedule builds per-team upcoming opponent lists from NBA schedule
// feeds.
//
// Three sources feed the merge in fixed precedence: the cdn.nba.com live
// scoreboard owns today's games outright, the season schedule (probed across
// its numbered mirror files) covers future dates, and the ESPN scoreboard
// fills any future date the season file has no games for. Every fetched team
// name is resolved against the roster registry before it is matched, so feed
// spelling quirks never split a team's schedule.
package schedule
