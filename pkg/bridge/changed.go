package bridge

import (
	"strings"

	"github.com/backkem/matterbridge/pkg/clusters/bridgedbasic"
	"github.com/backkem/matterbridge/pkg/clusters/groups"
	"github.com/backkem/matterbridge/pkg/clusters/identify"
	"github.com/backkem/matterbridge/pkg/clusters/onoff"
	"github.com/backkem/matterbridge/pkg/datamodel"
)

// ChangeMask records which device fields changed in one update.
type ChangeMask uint32

// Change bits. The first six positions are fixed.
const (
	ChangeReachable ChangeMask = 1 << iota
	ChangeLocation
	ChangeName
	ChangeVendorName
	ChangeProductName
	ChangeSerialNumber
	ChangeOnline
	ChangeIdentifyTime
	ChangeIdentifyType
	ChangeGroupsNameSupport
	ChangeOnOff
)

type changeTarget struct {
	bit     ChangeMask
	name    string
	cluster datamodel.ClusterID
	attr    datamodel.AttributeID
	report  bool
}

// Ordered by bit; Paths reports in this order.
var changeTargets = []changeTarget{
	{ChangeReachable, "Reachable", bridgedbasic.ClusterID, bridgedbasic.AttrReachable, true},
	{ChangeLocation, "Location", 0, 0, false},
	{ChangeName, "Name", bridgedbasic.ClusterID, bridgedbasic.AttrNodeLabel, true},
	{ChangeVendorName, "VendorName", bridgedbasic.ClusterID, bridgedbasic.AttrVendorName, true},
	{ChangeProductName, "ProductName", bridgedbasic.ClusterID, bridgedbasic.AttrProductName, true},
	{ChangeSerialNumber, "SerialNumber", bridgedbasic.ClusterID, bridgedbasic.AttrSerialNumber, true},
	{ChangeOnline, "Online", 0, 0, false},
	{ChangeIdentifyTime, "IdentifyTime", identify.ClusterID, identify.AttrIdentifyTime, true},
	{ChangeIdentifyType, "IdentifyType", identify.ClusterID, identify.AttrIdentifyType, true},
	{ChangeGroupsNameSupport, "GroupsNameSupport", groups.ClusterID, groups.AttrNameSupport, true},
	{ChangeOnOff, "OnOff", onoff.ClusterID, onoff.AttrOnOff, true},
}

// Has reports whether every bit of other is set in m.
func (m ChangeMask) Has(other ChangeMask) bool {
	return m&other == other
}

// String returns the set bits joined by "|".
func (m ChangeMask) String() string {
	if m == 0 {
		return "None"
	}
	var names []string
	for _, t := range changeTargets {
		if m&t.bit != 0 {
			names = append(names, t.name)
		}
	}
	return strings.Join(names, "|")
}

// Paths returns the attribute paths on endpoint implied by the mask.
// Location and Online have no attribute and yield no path.
func (m ChangeMask) Paths(endpoint datamodel.EndpointID) []datamodel.ConcreteAttributePath {
	var paths []datamodel.ConcreteAttributePath
	for _, t := range changeTargets {
		if m&t.bit == 0 || !t.report {
			continue
		}
		paths = append(paths, datamodel.ConcreteAttributePath{
			Endpoint:  endpoint,
			Cluster:   t.cluster,
			Attribute: t.attr,
		})
	}
	return paths
}

// Clusters returns the distinct clusters touched by the mask.
func (m ChangeMask) Clusters() []datamodel.ClusterID {
	var ids []datamodel.ClusterID
	for _, t := range changeTargets {
		if m&t.bit == 0 || !t.report {
			continue
		}
		seen := false
		for _, id := range ids {
			if id == t.cluster {
				seen = true
				break
			}
		}
		if !seen {
			ids = append(ids, t.cluster)
		}
	}
	return ids
}
