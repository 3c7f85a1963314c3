package trirast

// emptyGBufferDepth is the threshold above which a G-buffer depth sample is
// considered far-plane/never-written and skipped by the lighting pass.
const emptyGBufferDepth = 0.99

// normalizeThreshold guards against normalizing near-zero vectors (surface
// normals, view, half and light vectors), matching the degenerate-geometry
// guard used throughout the deferred pass.
const normalizeThreshold = 1e-3

// attenuationEpsilon is the minimum attenuation for a light to contribute
// at all; below it the light is skipped entirely, including its ambient
// term.
const attenuationEpsilon = 1e-3

// ShadeDeferredPixel computes the lit color at one G-buffer pixel given the
// active lights and view parameters, following the same math as the
// forward lighting shader so that the two pipelines agree up to the
// documented power-approximation tolerance.
func ShadeDeferredPixel(position, normal Vec3, albedo Vec4, lights []Light, cameraPosition, specularColor Vec3, shininess float32) Vec4 {
	n := normal.Normalized(normalizeThreshold)
	viewDir := cameraPosition.Sub(position).Normalized(normalizeThreshold)

	var color Vec3

	for _, light := range lights {
		lightDir, attenuation, ok := lightVector(light, position)
		if !ok {
			continue
		}
		if attenuation <= attenuationEpsilon {
			continue
		}

		ndotL := maxf32(0, n.Dot(lightDir))
		if ndotL > 0 {
			diffuseContrib := ndotL * attenuation * (1 - light.Ambient)
			color = color.Add(albedo.XYZ().MulVec3(light.Color).Mul(light.Intensity * diffuseContrib))

			halfDir := lightDir.Add(viewDir).Normalized(normalizeThreshold)
			ndotH := maxf32(0, n.Dot(halfDir))
			specularPower := approxPow(ndotH, shininess)
			specularContrib := specularPower * ndotL * attenuation * light.Intensity
			color = color.Add(specularColor.MulVec3(light.Color).Mul(specularContrib))
		}

		color = color.Add(light.Color.Mul(light.Ambient))
	}

	color = color.Clamp01()
	return Vec4{X: color.X, Y: color.Y, Z: color.Z, W: albedo.W}
}

// lightVector computes the normalized direction from a surface point
// toward a light and that light's attenuation factor. ok is false when a
// point or spot light coincides with the surface point (zero-length
// vector), in which case the light contributes nothing.
func lightVector(light Light, position Vec3) (direction Vec3, attenuation float32, ok bool) {
	if light.Type == DirectionalLight {
		return light.Direction.Mul(-1), 1, true
	}

	toLight := light.Position.Sub(position)
	length := toLight.Length()
	if length <= normalizeThreshold {
		return Vec3{}, 0, false
	}
	direction = toLight.Mul(1 / length)

	attenuation = 1
	if light.Decay > 1e-2 {
		attenuation = maxf32(0, 1-length/light.Decay)
	}

	if light.Type == SpotLight {
		spotDir := light.Direction.Mul(-1)
		cosTheta := direction.Dot(spotDir)
		switch {
		case cosTheta < light.OuterConeAngle:
			attenuation = 0
		case cosTheta < light.InnerConeAngle:
			coneFactor := (cosTheta - light.OuterConeAngle) / (light.InnerConeAngle - light.OuterConeAngle)
			attenuation *= coneFactor
		}
	}

	return direction, attenuation, true
}

// approxPow approximates base^exponent for a non-negative integer exponent
// by repeated squaring: starting from base, square floor(log2(exponent))
// times. This is exact at exponent ∈ {1, 2, 4, 8, 16, 32, ...} and
// monotonically non-decreasing in base elsewhere; odd exponents are not
// handled exactly, which matches the accepted behavior of this
// approximation.
func approxPow(base, exponent float32) float32 {
	result := base
	for i := 2; float32(i) <= exponent; i *= 2 {
		result *= result
	}
	return result
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
