package service

// Database path for the embedded store - variable to allow testing with
// different paths.
var dbPath = "data/badger"
