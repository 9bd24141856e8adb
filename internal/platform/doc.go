package platform

// Package platform contains the glue to the external yt-dlp tool: the
// command-line invocation it is launched with and the scraping of its
// textual progress output. Flag spellings and output expectations are an
// unversioned contract of the tool, so they are kept in this one package
// for easy adaptation.
