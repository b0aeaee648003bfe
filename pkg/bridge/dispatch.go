package bridge

import (
	"github.com/backkem/matterbridge/pkg/datamodel"
)

// CommandHandler is implemented by cluster handlers that accept commands.
type CommandHandler interface {
	InvokeCommand(cmd datamodel.CommandID) error
}

// AddClusterHandler registers a cluster handler on the device.
// Returns ErrClusterExists if the cluster already has a handler.
func (d *Device) AddClusterHandler(h datamodel.AttributeHandler) error {
	id := h.ClusterID()
	if _, exists := d.handlers[id]; exists {
		return datamodel.ErrClusterExists
	}

	d.handlers[id] = h
	d.order = append(d.order, id)
	return nil
}

// ClusterHandler returns the handler for the cluster, or nil.
func (d *Device) ClusterHandler(id datamodel.ClusterID) datamodel.AttributeHandler {
	return d.handlers[id]
}

// ClusterHandlers returns all handlers in registration order.
func (d *Device) ClusterHandlers() []datamodel.AttributeHandler {
	result := make([]datamodel.AttributeHandler, 0, len(d.order))
	for _, id := range d.order {
		result = append(result, d.handlers[id])
	}
	return result
}

// HandleReadAttribute encodes the attribute value into buf and returns the
// encoded length. len(buf) is the maximum read length.
// Returns ErrUnsupportedCluster if no handler serves the cluster.
func (d *Device) HandleReadAttribute(cluster datamodel.ClusterID, attr datamodel.AttributeID, buf []byte) (int, error) {
	h, ok := d.handlers[cluster]
	if !ok {
		return 0, datamodel.ErrUnsupportedCluster
	}

	n, err := h.ReadAttribute(attr, buf)
	if err != nil {
		if d.log != nil {
			d.log.Debugf("read %d/0x%04X/0x%04X: %v", d.endpointID, uint32(cluster), uint32(attr), err)
		}
		return 0, err
	}
	return n, nil
}

// HandleWriteAttribute decodes buf and applies the value through the device
// setters. Returns ErrUnsupportedCluster if no handler serves the cluster.
func (d *Device) HandleWriteAttribute(cluster datamodel.ClusterID, attr datamodel.AttributeID, buf []byte) error {
	h, ok := d.handlers[cluster]
	if !ok {
		return datamodel.ErrUnsupportedCluster
	}

	if err := h.WriteAttribute(attr, buf); err != nil {
		if d.log != nil {
			d.log.Debugf("write %d/0x%04X/0x%04X: %v", d.endpointID, uint32(cluster), uint32(attr), err)
		}
		return err
	}
	return nil
}

// HandleCommand invokes a command on the cluster handler.
// Returns ErrUnsupportedCluster if no handler serves the cluster and
// ErrUnsupportedCommand if the handler takes no commands.
func (d *Device) HandleCommand(cluster datamodel.ClusterID, cmd datamodel.CommandID) error {
	h, ok := d.handlers[cluster]
	if !ok {
		return datamodel.ErrUnsupportedCluster
	}

	ch, ok := h.(CommandHandler)
	if !ok {
		return datamodel.ErrUnsupportedCommand
	}
	return ch.InvokeCommand(cmd)
}
