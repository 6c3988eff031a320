package topics

const (
	bashCompletionFunc = `
__yd_get_config() {
    __yd_config=$(eval $COMP_LINE --get-config-filename)
}

__internal_list_files() {
    local yd_output out
	__yd_get_config
	if yd_output=$(yd --config $__yd_config file list --basic 2>/dev/null); then
        local IFS=$'\n'
        out=($(echo "${yd_output}"))
        COMPREPLY=( $( compgen -W "${out[*]}" -- "$cur" ) )
    fi
}

__internal_convert() {
    if [ "$prev" = "-f" ] || [ "$prev" = "--format" ]; then
        COMPREPLY=( $( compgen -W "mp3 mp4" -- "$cur" ) )
    fi
}

__yd_custom_func() {
    case ${last_command} in
		yd_file_delete | yd_file_download)
            __internal_list_files
            return
            ;;
		yd_convert)
			__internal_convert
            return
            ;;
        *)
            ;;
    esac
}
`
)
