// Package jira normalises raw tracker issues into the fixed Story shape.
// Normalisation is pure and total: any issue satisfying the remote's
// structural guarantee maps to a Story with no missing fields.
package jira
