// Package deploy publishes the rendered friends page.
//
// A deploy has two steps: the file is copied to the remote path with scp,
// then the site cache is purged with an HTTP DELETE so the new page is
// served immediately. Either step failing aborts the deploy with an error.
package deploy
