/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package catalog

// A NearEarthObject is a single tracked object, together with every
// close approach recorded for it in the dataset. One instance exists
// per unique name, no matter how many source rows reference it.
type NearEarthObject struct {
	ID            string
	Name          string
	DiameterMinKM float64
	Hazardous     bool
	Approaches    []*CloseApproach
}

// AddApproach appends a close approach to the object's history.
func (n *NearEarthObject) AddApproach(a *CloseApproach) {
	n.Approaches = append(n.Approaches, a)
}

// A CloseApproach is one recorded approach event. NEOName is a weak
// back-reference to the owning object; resolve it through
// Catalog.ByName rather than holding a pointer cycle.
type CloseApproach struct {
	NEOName        string
	MissDistanceKM float64
	// Date is the full event timestamp from the dataset, which is
	// finer-grained than the coarse day key used for indexing.
	Date string
}

// Key identifies an approach for deduplication purposes.
func (c *CloseApproach) Key() string {
	return c.Date + "." + c.NEOName
}
