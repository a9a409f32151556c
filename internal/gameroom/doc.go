// Package gameroom reads GameRoom collection exports and summarizes them.
//
// LoadDir reads one JSON file per collection (gamehistories, tickets, users,
// gameevents, orders) as written by a MongoDB export, extended JSON
// wrappers included. Analyze turns the collections into a Report: monthly
// growth, tickets per game, activity inside and between events, paid orders
// per event and the players with the most matches.
package gameroom
