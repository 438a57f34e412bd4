// Package git reads the hosting project of a site from its local git checkout.
package git
