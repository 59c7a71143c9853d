package alexa

// Lists every registered appliance.
func (r *Router) discoverAppliances(req *directiveRequest) (*Response, error) {
	devices := r.registry.List()
	appliances := make([]*ApplianceDescriptor, 0, len(devices))
	for _, v := range devices {
		info := v.Info()
		caps := v.Capabilities()
		d := &ApplianceDescriptor{
			ApplianceID:         info.ID,
			ManufacturerName:    info.Manufacturer,
			ModelName:           info.Model,
			Version:             info.Version,
			FriendlyName:        info.FriendlyName,
			FriendlyDescription: info.FriendlyDescription,
			IsReachable:         true,
			Actions:             caps.Actions(),
			ApplianceTypes:      caps.ApplianceTypes(),
		}

		if 0 != len(info.Details) {
			d.Details = info.Details
		}

		appliances = append(appliances, d)
	}

	return req.confirm(&DiscoverAppliancesPayload{DiscoveredAppliances: appliances}), nil
}
