package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- Tracker: one row per distinct word, replaced on every attempt
CREATE TABLE IF NOT EXISTS tracker (
    word TEXT PRIMARY KEY,
    pos TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('done', 'missing')),
    gender_or_group TEXT NOT NULL DEFAULT '',
    timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tracker_status ON tracker(status);

-- Classified output: append-only, word unique
CREATE TABLE IF NOT EXISTS words_good (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    word TEXT NOT NULL UNIQUE,
    pos TEXT NOT NULL,
    gender_or_group TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_words_good_pos ON words_good(pos);

-- Unclassified output: append-only, word unique
CREATE TABLE IF NOT EXISTS words_missing (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    word TEXT NOT NULL UNIQUE,
    pos TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Definitions: optional cached text attached by the define command
CREATE TABLE IF NOT EXISTS definitions (
    word TEXT PRIMARY KEY,
    title TEXT,
    excerpt TEXT NOT NULL,
    language TEXT,
    source_url TEXT,
    fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
