// Package parameters purges the configuration parameters that belong to an
// application environment and its deployment metadata.
package parameters
